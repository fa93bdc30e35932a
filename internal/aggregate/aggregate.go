// Package aggregate folds auction listings into per-item statistics.
//
// The fold is commutative: count and total are sums and the buyout is a
// minimum, so results do not depend on listing order.
package aggregate

import (
	"math"

	"github.com/rickgao/auction-stats/internal/model"
)

// Result maps item id to its statistics for one auction house.
type Result map[int64]*model.ItemAggregate

// Aggregator accumulates listings for a single (realm, auction house) pass.
// It is not safe for concurrent use.
type Aggregator struct {
	items Result
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{items: make(Result)}
}

// Add folds one listing into the result.
//
// A listing with a non-positive quantity is counted but contributes neither
// to the item total nor to the unit buyout, which is undefined for it.
func (a *Aggregator) Add(l model.AuctionListing) {
	entry, ok := a.items[l.Item.ID]
	if !ok {
		entry = &model.ItemAggregate{}
		a.items[l.Item.ID] = entry
	}

	entry.Count++
	if l.Quantity <= 0 {
		return
	}
	entry.TotalItems = saturatingAdd(entry.TotalItems, l.Quantity)

	if l.Buyout > 0 {
		entry.ObserveBuyout(l.Buyout / l.Quantity)
	}
}

// Result returns the accumulated statistics. The Aggregator must not be
// used after calling Result.
func (a *Aggregator) Result() Result {
	return a.items
}

// Aggregate folds all listings into a fresh Result.
func Aggregate(listings []model.AuctionListing) Result {
	a := New()
	for _, l := range listings {
		a.Add(l)
	}
	return a.Result()
}

// saturatingAdd returns a+b clamped to the int64 range.
func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}
