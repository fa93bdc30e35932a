package model

import (
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Marketplace Types
// -----------------------------------------------------------------------------

// Item identifies the listed item. Rand and Seed are only set for items
// with random enchantments.
type Item struct {
	ID   int64
	Rand *int64
	Seed *int64
}

// AuctionListing is a single listing on an auction house.
type AuctionListing struct {
	ID       int64  // Listing ID
	Item     Item   // Listed item
	Bid      int64  // Current bid (copper)
	Buyout   int64  // Buyout for the whole stack (copper), 0 if none
	Quantity int64  // Stack size
	TimeLeft string // SHORT, MEDIUM, LONG, VERY_LONG
}

// Pair identifies one auction house on one connected realm.
type Pair struct {
	RealmID        int64
	AuctionHouseID int64
}

func (p Pair) String() string {
	return fmt.Sprintf("%d/%d", p.RealmID, p.AuctionHouseID)
}

// -----------------------------------------------------------------------------
// Aggregated Types
// -----------------------------------------------------------------------------

// ItemAggregate holds the statistics for one item id within one pair.
type ItemAggregate struct {
	Count      int64 // Number of listings
	TotalItems int64 // Saturating sum of quantities

	minBuyout int64
	hasBuyout bool
}

// MinBuyout returns the lowest unit buyout seen, and false if no listing
// carried a usable buyout.
func (a *ItemAggregate) MinBuyout() (int64, bool) {
	return a.minBuyout, a.hasBuyout
}

// ObserveBuyout records a unit buyout, keeping the strictly smallest.
func (a *ItemAggregate) ObserveBuyout(unit int64) {
	if !a.hasBuyout || unit < a.minBuyout {
		a.minBuyout = unit
		a.hasBuyout = true
	}
}

// MetricPoint is one time-series point ready to be written.
type MetricPoint struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]int64
	Time        time.Time
}

// -----------------------------------------------------------------------------
// Discovery Types
// -----------------------------------------------------------------------------

// Realm is a named member of a connected realm.
type Realm struct {
	Name string
}

// AuctionHouseRef names one auction house of a connected realm.
type AuctionHouseRef struct {
	ID   int64
	Name string
}

// RealmGroup is a connected realm with its member realms and auction houses.
type RealmGroup struct {
	ID            int64
	Realms        []Realm
	AuctionHouses []AuctionHouseRef
}
