package api

import (
	"context"
	"fmt"

	"github.com/rickgao/auction-stats/internal/model"
)

// GetAuctions fetches every listing on one auction house of a connected realm.
func (c *Client) GetAuctions(ctx context.Context, realmID, auctionHouseID int64) ([]model.AuctionListing, error) {
	c.logger.Info("requesting auctions",
		"realm_id", realmID,
		"ah_id", auctionHouseID,
	)

	path := fmt.Sprintf("/data/wow/connected-realm/%d/auctions/%d", realmID, auctionHouseID)

	var resp AuctionsResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get auctions realm %d ah %d: %w", realmID, auctionHouseID, err)
	}
	if resp.Auctions == nil {
		return nil, fmt.Errorf("get auctions realm %d ah %d: %w: response has no auctions field",
			realmID, auctionHouseID, model.ErrParse)
	}

	return resp.ToListings(), nil
}
