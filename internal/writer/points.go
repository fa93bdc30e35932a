package writer

import (
	"sort"
	"strconv"
	"time"

	"github.com/rickgao/auction-stats/internal/aggregate"
	"github.com/rickgao/auction-stats/internal/model"
)

// Measurement is the series name every point is written under.
const Measurement = "auctions"

// Tag and field keys.
const (
	TagItemID   = "item_id"
	TagRealmID  = "realm_id"
	TagAHID     = "ah_id"
	TagItemName = "item_name"

	FieldCount      = "count"
	FieldTotalItems = "total_items"
	FieldMinBuyout  = "min_buyout"
)

// NameLookup resolves item display names.
type NameLookup interface {
	Lookup(id int64) (string, bool)
}

// BuildPoints converts the statistics of one pair into points stamped with
// ts, ordered by item id. item_name is tagged only for items names knows;
// items without a buyout report min_buyout 0.
func BuildPoints(result aggregate.Result, pair model.Pair, names NameLookup, ts time.Time) []model.MetricPoint {
	ids := make([]int64, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	realmID := strconv.FormatInt(pair.RealmID, 10)
	ahID := strconv.FormatInt(pair.AuctionHouseID, 10)

	points := make([]model.MetricPoint, 0, len(ids))
	for _, id := range ids {
		agg := result[id]
		minBuyout, _ := agg.MinBuyout()

		tags := map[string]string{
			TagItemID:  strconv.FormatInt(id, 10),
			TagRealmID: realmID,
			TagAHID:    ahID,
		}
		if names != nil {
			if name, ok := names.Lookup(id); ok {
				tags[TagItemName] = name
			}
		}

		points = append(points, model.MetricPoint{
			Measurement: Measurement,
			Tags:        tags,
			Fields: map[string]int64{
				FieldCount:      agg.Count,
				FieldTotalItems: agg.TotalItems,
				FieldMinBuyout:  minBuyout,
			},
			Time: ts,
		})
	}

	return points
}
