package api

import (
	"context"
	"fmt"
)

// GetConnectedRealmIndex lists links to every connected realm in the region.
func (c *Client) GetConnectedRealmIndex(ctx context.Context) (*ConnectedRealmIndexResponse, error) {
	var resp ConnectedRealmIndexResponse
	if err := c.get(ctx, "/data/wow/connected-realm/index", nil, &resp); err != nil {
		return nil, fmt.Errorf("get connected realm index: %w", err)
	}
	return &resp, nil
}

// GetConnectedRealm fetches a connected realm from a link in the index.
func (c *Client) GetConnectedRealm(ctx context.Context, href string) (*ConnectedRealmResponse, error) {
	var resp ConnectedRealmResponse
	if err := c.get(ctx, href, c.localeQuery(), &resp); err != nil {
		return nil, fmt.Errorf("get connected realm %s: %w", href, err)
	}
	return &resp, nil
}

// GetAuctionHouses lists the auction houses of a connected realm.
func (c *Client) GetAuctionHouses(ctx context.Context, realmID int64) (*AuctionHouseIndexResponse, error) {
	var resp AuctionHouseIndexResponse
	path := fmt.Sprintf("/data/wow/connected-realm/%d/auctions/index", realmID)
	if err := c.get(ctx, path, c.localeQuery(), &resp); err != nil {
		return nil, fmt.Errorf("get auction houses realm %d: %w", realmID, err)
	}
	return &resp, nil
}
