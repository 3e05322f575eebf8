package game

import (
	rand "math/rand/v2"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/seat"
)

// Dealer produces a fresh thirteen-card hand for every seat at the
// start of each round. It is injected into State so tests can deal
// fixed hands.
type Dealer interface {
	Deal() [seat.NumSeats]cards.Set
}

// ShuffledDealer deals from a uniformly shuffled deck, round-robin
// starting at seat one.
type ShuffledDealer struct {
	rng *rand.Rand // nil falls back to the global source
}

// NewShuffledDealer creates a dealer with an explicit RNG for
// deterministic shuffles. A nil RNG uses the global source.
func NewShuffledDealer(rng *rand.Rand) *ShuffledDealer {
	return &ShuffledDealer{rng: rng}
}

// Deal shuffles a full deck with Fisher-Yates and splits it into four
// thirteen-card hands.
func (d *ShuffledDealer) Deal() [seat.NumSeats]cards.Set {
	var deck [cards.NumCards]cards.Card
	for i := range deck {
		deck[i], _ = cards.FromIndex(i)
	}
	for i := len(deck) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		deck[i], deck[j] = deck[j], deck[i]
	}

	var hands [seat.NumSeats]cards.Set
	s := seat.One
	for _, c := range deck {
		hands[s].Insert(c)
		s = s.Next()
	}
	return hands
}
