package aggregate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/auction-stats/internal/model"
)

func listing(item, buyout, quantity int64) model.AuctionListing {
	return model.AuctionListing{
		Item:     model.Item{ID: item},
		Buyout:   buyout,
		Quantity: quantity,
	}
}

func minBuyout(t *testing.T, a *model.ItemAggregate) int64 {
	t.Helper()
	v, _ := a.MinBuyout()
	return v
}

func TestAggregate_Scenario(t *testing.T) {
	got := Aggregate([]model.AuctionListing{
		listing(1, 100, 10),
		listing(1, 0, 5),
		listing(2, 60, 2),
	})

	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[1].Count)
	assert.Equal(t, int64(15), got[1].TotalItems)
	assert.Equal(t, int64(10), minBuyout(t, got[1]))

	assert.Equal(t, int64(1), got[2].Count)
	assert.Equal(t, int64(2), got[2].TotalItems)
	assert.Equal(t, int64(30), minBuyout(t, got[2]))
}

func TestAggregate_MinBuyout(t *testing.T) {
	tests := []struct {
		name     string
		listings []model.AuctionListing
		want     int64
		wantOK   bool
	}{
		{
			name:     "no buyouts",
			listings: []model.AuctionListing{listing(7, 0, 1), listing(7, 0, 20)},
			want:     0,
			wantOK:   false,
		},
		{
			name:     "floor division",
			listings: []model.AuctionListing{listing(7, 100, 3)},
			want:     33,
			wantOK:   true,
		},
		{
			name:     "strictly smaller replaces",
			listings: []model.AuctionListing{listing(7, 500, 5), listing(7, 90, 1), listing(7, 1000, 20)},
			want:     50,
			wantOK:   true,
		},
		{
			name:     "first buyout sets after unpriced listings",
			listings: []model.AuctionListing{listing(7, 0, 5), listing(7, 0, 1), listing(7, 800, 4)},
			want:     200,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.listings)
			v, ok := got[7].MinBuyout()
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestAggregate_ZeroQuantity(t *testing.T) {
	var got Result
	require.NotPanics(t, func() {
		got = Aggregate([]model.AuctionListing{
			listing(3, 500, 0),
			listing(3, 400, 4),
			listing(3, 100, -2),
		})
	})

	assert.Equal(t, int64(3), got[3].Count)
	assert.Equal(t, int64(4), got[3].TotalItems)
	assert.Equal(t, int64(100), minBuyout(t, got[3]))
}

func TestAggregate_ZeroQuantityOnly(t *testing.T) {
	got := Aggregate([]model.AuctionListing{listing(3, 500, 0)})

	assert.Equal(t, int64(1), got[3].Count)
	assert.Equal(t, int64(0), got[3].TotalItems)
	_, ok := got[3].MinBuyout()
	assert.False(t, ok)
}

func TestAggregate_SaturatingTotal(t *testing.T) {
	got := Aggregate([]model.AuctionListing{
		listing(9, 0, math.MaxInt64-1),
		listing(9, 0, 5),
		listing(9, 0, 5),
	})

	assert.Equal(t, int64(math.MaxInt64), got[9].TotalItems)
	assert.Equal(t, int64(3), got[9].Count)
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Empty(t, got)
}

func TestAggregate_PermutationInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	listings := make([]model.AuctionListing, 0, 500)
	for i := 0; i < 500; i++ {
		listings = append(listings, listing(
			int64(r.IntN(20)),
			int64(r.IntN(5))*int64(r.IntN(10000)),
			int64(r.IntN(20)),
		))
	}
	want := Aggregate(listings)

	for round := 0; round < 10; round++ {
		shuffled := append([]model.AuctionListing(nil), listings...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, Aggregate(shuffled), "round %d", round)
	}
}

func TestAggregator_Incremental(t *testing.T) {
	listings := []model.AuctionListing{listing(1, 0, 1), listing(2, 0, 1), listing(1, 30, 3)}

	a := New()
	for _, l := range listings {
		a.Add(l)
	}

	assert.Len(t, a.Result(), 2)
	assert.Equal(t, Aggregate(listings), a.Result())
}

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{1, 2, 3},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MaxInt64 - 1, 1, math.MaxInt64},
		{math.MinInt64, -1, math.MinInt64},
		{-5, 3, -2},
	}
	for _, tt := range tests {
		if got := saturatingAdd(tt.a, tt.b); got != tt.want {
			t.Errorf("saturatingAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
