package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBidCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		bid     Bid
		partner Bid
		wantErr bool
	}{
		{name: "take with take", bid: Take(4), partner: Take(5)},
		{name: "take with nil", bid: Take(7), partner: Nil},
		{name: "nil with take", bid: Nil, partner: Take(7)},
		{name: "blind nil with take", bid: BlindNil, partner: Take(10)},
		{name: "exactly thirteen combined", bid: Take(6), partner: Take(7)},
		{name: "fourteen combined", bid: Take(7), partner: Take(7), wantErr: true},
		{name: "thirteen with nil partner", bid: Take(13), partner: Nil},
		{name: "both nil", bid: Nil, partner: Nil, wantErr: true},
		{name: "nil with blind nil", bid: Nil, partner: BlindNil, wantErr: true},
		{name: "both blind nil", bid: BlindNil, partner: BlindNil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bid.CompatibilityError(&tt.partner)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			// Compatibility does not depend on bid order.
			reverse := tt.partner.CompatibilityError(&tt.bid)
			assert.Equal(t, err != nil, reverse != nil, "compatibility should be symmetric")
		})
	}
}

func TestBidCompatibilityNoPartnerBid(t *testing.T) {
	assert.NoError(t, Nil.CompatibilityError(nil))
	assert.NoError(t, Take(13).CompatibilityError(nil))
}

func TestTeamTricks(t *testing.T) {
	assert.Equal(t, 4, TeamTricks(Take(1), Take(2)), "team bids below four round up")
	assert.Equal(t, 4, TeamTricks(Nil, Take(0)))
	assert.Equal(t, 7, TeamTricks(Take(3), Take(4)))
	assert.Equal(t, 5, TeamTricks(BlindNil, Take(5)))
}

func TestBidValue(t *testing.T) {
	tests := []struct {
		name string
		a, b Bid
		want int
	}{
		{name: "plain five", a: Take(2), b: Take(3), want: 5},
		{name: "minimum applies", a: Take(1), b: Take(1), want: 4},
		{name: "nil adds ten", a: Nil, b: Take(5), want: 15},
		{name: "blind nil adds twenty", a: BlindNil, b: Take(4), want: 24},
		{name: "high bid bonus", a: Take(5), b: Take(5), want: 20},
		{name: "nil plus high bid", a: Nil, b: Take(10), want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BidValue(tt.a, tt.b))
		})
	}
}

func TestAllBids(t *testing.T) {
	bids := AllBids()
	assert.Len(t, bids, 16)
	seen := make(map[Bid]bool)
	for _, b := range bids {
		assert.False(t, seen[b], "bid %s should appear once", b)
		seen[b] = true
	}
	assert.True(t, seen[Nil])
	assert.True(t, seen[BlindNil])
	assert.True(t, seen[Take(0)])
	assert.True(t, seen[Take(13)])
}

func TestBidString(t *testing.T) {
	assert.Equal(t, "nil", Nil.String())
	assert.Equal(t, "blind nil", BlindNil.String())
	assert.Equal(t, "take 7", Take(7).String())
}
