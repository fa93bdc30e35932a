package writer

import (
	"context"

	"github.com/rickgao/auction-stats/internal/model"
)

// MetricWriter persists the points of one pair in a single batch.
type MetricWriter interface {
	WritePoints(ctx context.Context, points []model.MetricPoint) error
	Close() error
}
