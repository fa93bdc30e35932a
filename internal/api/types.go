package api

// AuctionsResponse from GET /data/wow/connected-realm/{id}/auctions/{ah}
type AuctionsResponse struct {
	Auctions []APIAuction `json:"auctions"`
}

// APIAuction represents a single listing from the Battle.net API.
type APIAuction struct {
	ID       int64   `json:"id"`
	Item     APIItem `json:"item"`
	Bid      int64   `json:"bid"`
	Buyout   int64   `json:"buyout"`
	Quantity int64   `json:"quantity"`
	TimeLeft string  `json:"time_left"`
}

// APIItem identifies the listed item.
type APIItem struct {
	ID   int64  `json:"id"`
	Rand *int64 `json:"rand,omitempty"`
	Seed *int64 `json:"seed,omitempty"`
}

// ConnectedRealmIndexResponse from GET /data/wow/connected-realm/index
type ConnectedRealmIndexResponse struct {
	ConnectedRealms []Link `json:"connected_realms"`
}

// Link is a hypermedia reference to another resource.
type Link struct {
	Href string `json:"href"`
}

// ConnectedRealmResponse from GET /data/wow/connected-realm/{id}
type ConnectedRealmResponse struct {
	ID     int64      `json:"id"`
	Realms []APIRealm `json:"realms"`
}

// APIRealm is a member realm of a connected realm.
type APIRealm struct {
	Name string `json:"name"`
}

// AuctionHouseIndexResponse from GET /data/wow/connected-realm/{id}/auctions/index
type AuctionHouseIndexResponse struct {
	Auctions []APIAuctionHouse `json:"auctions"`
}

// APIAuctionHouse names one auction house.
type APIAuctionHouse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
