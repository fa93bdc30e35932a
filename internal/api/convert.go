package api

import "github.com/rickgao/auction-stats/internal/model"

// ToListing converts an API auction to the shared model.
func (a APIAuction) ToListing() model.AuctionListing {
	return model.AuctionListing{
		ID: a.ID,
		Item: model.Item{
			ID:   a.Item.ID,
			Rand: a.Item.Rand,
			Seed: a.Item.Seed,
		},
		Bid:      a.Bid,
		Buyout:   a.Buyout,
		Quantity: a.Quantity,
		TimeLeft: a.TimeLeft,
	}
}

// ToListings converts all auctions in the response.
func (r *AuctionsResponse) ToListings() []model.AuctionListing {
	listings := make([]model.AuctionListing, len(r.Auctions))
	for i, a := range r.Auctions {
		listings[i] = a.ToListing()
	}
	return listings
}

// ToRealmGroup converts a connected realm and its auction house index.
func ToRealmGroup(cr *ConnectedRealmResponse, houses *AuctionHouseIndexResponse) model.RealmGroup {
	group := model.RealmGroup{ID: cr.ID}

	for _, r := range cr.Realms {
		group.Realms = append(group.Realms, model.Realm{Name: r.Name})
	}
	if houses != nil {
		for _, h := range houses.Auctions {
			group.AuctionHouses = append(group.AuctionHouses, model.AuctionHouseRef{ID: h.ID, Name: h.Name})
		}
	}

	return group
}
