// Package catalog walks the connected realms of a region and prints their
// auction houses.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rickgao/auction-stats/internal/api"
	"github.com/rickgao/auction-stats/internal/model"
)

// RealmSource provides the connected realm endpoints.
type RealmSource interface {
	GetConnectedRealmIndex(ctx context.Context) (*api.ConnectedRealmIndexResponse, error)
	GetConnectedRealm(ctx context.Context, href string) (*api.ConnectedRealmResponse, error)
	GetAuctionHouses(ctx context.Context, realmID int64) (*api.AuctionHouseIndexResponse, error)
}

// Catalog enumerates realm groups.
type Catalog struct {
	source RealmSource
	logger *slog.Logger
}

// New creates a Catalog.
func New(source RealmSource, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{source: source, logger: logger}
}

// Walk calls visit once per connected realm in index order, with the
// auction houses attached. It stops at the first error, so groups visited
// before the failure have already been handled.
func (c *Catalog) Walk(ctx context.Context, visit func(model.RealmGroup) error) error {
	index, err := c.source.GetConnectedRealmIndex(ctx)
	if err != nil {
		return err
	}
	c.logger.Debug("connected realm index", "groups", len(index.ConnectedRealms))

	for _, link := range index.ConnectedRealms {
		cr, err := c.source.GetConnectedRealm(ctx, link.Href)
		if err != nil {
			return err
		}

		houses, err := c.source.GetAuctionHouses(ctx, cr.ID)
		if err != nil {
			return err
		}

		if err := visit(api.ToRealmGroup(cr, houses)); err != nil {
			return fmt.Errorf("visit realm group %d: %w", cr.ID, err)
		}
	}

	return nil
}
