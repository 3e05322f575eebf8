package scoring

import "fmt"

// Score is a team's accumulated score, split into a signed "tens"
// component and a 0-9 "extras" remainder. Overtricks accumulate as
// extras and carry into the tens in blocks of ten, which costs the team
// ten points per carry.
type Score struct {
	tens   int
	extras int
}

// NewScore builds a score from a tens count and a number of extras,
// normalizing any extras overflow.
func NewScore(tens, extras int) Score {
	s := Score{tens: tens}
	s.AddExtras(extras)
	return s
}

// Tens returns the tens component.
func (s Score) Tens() int {
	return s.tens
}

// Extras returns the extras component, always in [0, 10).
func (s Score) Extras() int {
	return s.extras
}

// AddTens adds to the tens component.
func (s *Score) AddTens(n int) {
	s.tens += n
}

// SubTens subtracts from the tens component.
func (s *Score) SubTens(n int) {
	s.tens -= n
}

// AddExtras adds overtricks, carrying each full group of ten into a
// ten-point deduction.
func (s *Score) AddExtras(n int) {
	s.extras += n
	for s.extras >= 10 {
		s.tens -= 10
		s.extras -= 10
	}
}

// Add combines two scores.
func (s Score) Add(o Score) Score {
	sum := s
	sum.tens += o.tens
	sum.AddExtras(o.extras)
	return sum
}

// Display converts the score to the single integer shown on a score
// board. Extras count toward zero when the tens are negative.
func (s Score) Display() int {
	if s.tens < 0 {
		return s.tens*10 - s.extras
	}
	return s.tens*10 + s.extras
}

// String formats the score as its display integer.
func (s Score) String() string {
	return fmt.Sprintf("%d", s.Display())
}
