// Package seat models the four fixed positions at a spades table.
// Seats One and Three form one partnership, Two and Four the other.
package seat

import "fmt"

// Seat identifies a position at the table. Seat One starts the game as
// the dealer.
type Seat int

const (
	One Seat = iota
	Two
	Three
	Four
)

// NumSeats is the number of seats at the table.
const NumSeats = 4

// NumTeams is the number of partnerships.
const NumTeams = 2

// FromIndex converts a value in [0, NumSeats) to a Seat.
func FromIndex(index int) (Seat, error) {
	if index < 0 || index >= NumSeats {
		return 0, fmt.Errorf("invalid seat index: %d", index)
	}
	return Seat(index), nil
}

// Index returns the seat's position in [0, NumSeats).
func (s Seat) Index() int {
	return int(s)
}

// Next returns the seat to play after this one, wrapping around.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Previous returns the seat that plays before this one, wrapping around.
func (s Seat) Previous() Seat {
	return (s + NumSeats - 1) % NumSeats
}

// Partner returns the seat across the table, on the same team.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Team returns the partnership index in [0, NumTeams). Seats One and
// Three are team 0, seats Two and Four team 1.
func (s Seat) Team() int {
	return int(s) % NumTeams
}

// Order returns all four seats in play order starting at s.
func (s Seat) Order() [NumSeats]Seat {
	var order [NumSeats]Seat
	for i := range order {
		order[i] = (s + Seat(i)) % NumSeats
	}
	return order
}

// String returns a human-readable seat name.
func (s Seat) String() string {
	switch s {
	case One:
		return "seat one"
	case Two:
		return "seat two"
	case Three:
		return "seat three"
	case Four:
		return "seat four"
	default:
		return fmt.Sprintf("seat(%d)", int(s))
	}
}
