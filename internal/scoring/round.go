package scoring

import "github.com/cardtable/spades/internal/seat"

// TeamRoundResult records one partnership's bids and tricks taken for a
// completed round. Results are immutable once appended to the history.
type TeamRoundResult struct {
	// Bids holds each partner's bid, in seat order within the team.
	Bids [2]Bid
	// TricksTaken holds the tricks each partner personally took.
	TricksTaken [2]int
}

// RoundResults pairs both partnerships' results for one round, indexed
// by team.
type RoundResults [seat.NumTeams]TeamRoundResult

// NewRoundResults splits per-seat bids and trick counts into the two
// partnerships.
func NewRoundResults(bids [seat.NumSeats]Bid, taken [seat.NumSeats]int) RoundResults {
	var results RoundResults
	for _, s := range []seat.Seat{seat.One, seat.Two} {
		results[s.Team()] = TeamRoundResult{
			Bids:        [2]Bid{bids[s], bids[s.Partner()]},
			TricksTaken: [2]int{taken[s], taken[s.Partner()]},
		}
	}
	return results
}

// RoundScore returns the signed score delta this round produced for the
// team. The round fails when the team took fewer tricks than required,
// or when a partner who bid any kind of nil personally took a trick.
// Overtricks beyond the requirement are added as extras either way.
func (r TeamRoundResult) RoundScore() Score {
	taken := r.TricksTaken[0] + r.TricksTaken[1]
	required := TeamTricks(r.Bids[0], r.Bids[1])

	failed := taken < required ||
		(r.Bids[0].IsNil() && r.TricksTaken[0] != 0) ||
		(r.Bids[1].IsNil() && r.TricksTaken[1] != 0)
	value := BidValue(r.Bids[0], r.Bids[1])

	var score Score
	if failed {
		score.SubTens(value)
	} else {
		score.AddTens(value)
	}
	if taken > required {
		score.AddExtras(taken - required)
	}
	return score
}

// WinningTeam returns the index of the winning team, if any. A team
// wins with fifty or more tens while strictly ahead of its opponent, or
// immediately with a lead of fifty tens (the mercy rule).
func WinningTeam(scores [seat.NumTeams]Score) (int, bool) {
	for team := range scores {
		mine, theirs := scores[team].Tens(), scores[1-team].Tens()
		if mine >= 50 && mine > theirs {
			return team, true
		}
		if mine-theirs >= 50 {
			return team, true
		}
	}
	return 0, false
}
