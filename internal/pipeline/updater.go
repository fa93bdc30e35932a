package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/auction-stats/internal/aggregate"
	"github.com/rickgao/auction-stats/internal/metrics"
	"github.com/rickgao/auction-stats/internal/model"
	"github.com/rickgao/auction-stats/internal/writer"
)

// AuctionSource fetches the listings of one pair.
type AuctionSource interface {
	GetAuctions(ctx context.Context, realmID, auctionHouseID int64) ([]model.AuctionListing, error)
}

// Config controls how pairs are scheduled.
type Config struct {
	Concurrency  int  // Max pairs in flight (default: 1)
	IsolatePairs bool // Attempt every pair and collect failures
}

// Option configures an Updater.
type Option func(*Updater)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Updater) {
		u.logger = logger
	}
}

// WithMetrics records pair outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *Updater) {
		u.metrics = m
	}
}

// WithClock overrides the time source used for point timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		u.now = now
	}
}

// WithRunID fixes the run id instead of generating one per Run.
func WithRunID(id uuid.UUID) Option {
	return func(u *Updater) {
		u.runID = id
	}
}

// Updater runs the fetch, aggregate and write steps for a list of pairs.
type Updater struct {
	cfg     Config
	source  AuctionSource
	writer  writer.MetricWriter
	names   writer.NameLookup
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
	runID   uuid.UUID
}

// New creates an Updater. names may be nil.
func New(cfg Config, source AuctionSource, w writer.MetricWriter, names writer.NameLookup, opts ...Option) *Updater {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	u := &Updater{
		cfg:    cfg,
		source: source,
		writer: w,
		names:  names,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

// Run processes pairs and returns a report of the attempted ones. The
// returned error is the first failure in fail-fast mode, or the joined
// failures in isolated mode.
func (u *Updater) Run(ctx context.Context, pairs []model.Pair) (*Report, error) {
	runID := u.runID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	report := &Report{
		RunID:   runID,
		Started: u.now(),
	}
	logger := u.logger.With("run_id", report.RunID.String())

	logger.Info("update started",
		"pairs", len(pairs),
		"concurrency", u.cfg.Concurrency,
		"isolate_pairs", u.cfg.IsolatePairs,
	)
	logger.Debug("state", "state", StateAuthenticated)

	var err error
	switch {
	case u.cfg.IsolatePairs:
		err = u.runIsolated(ctx, logger, pairs, report)
	case u.cfg.Concurrency == 1:
		err = u.runSequential(ctx, logger, pairs, report)
	default:
		err = u.runGroup(ctx, logger, pairs, report)
	}

	if err != nil {
		logger.Error("update failed",
			"state", StateFailed,
			"attempted", len(report.Results),
			"failed", len(report.Failed()),
			"err", err,
		)
		return report, err
	}

	u.metrics.MarkSuccess(u.now())
	logger.Info("update complete",
		"state", StateDone,
		"pairs", len(report.Results),
		"points", report.Points(),
		"duration", time.Since(report.Started),
	)
	return report, nil
}

func (u *Updater) runSequential(ctx context.Context, logger *slog.Logger, pairs []model.Pair, report *Report) error {
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := u.processPair(ctx, logger, pair)
		report.Results = append(report.Results, res)
		if res.Err != nil {
			return fmt.Errorf("pair %s: %w", pair, res.Err)
		}
	}
	return nil
}

// runGroup runs pairs concurrently and cancels the rest on the first error.
func (u *Updater) runGroup(ctx context.Context, logger *slog.Logger, pairs []model.Pair, report *Report) error {
	results := make([]PairResult, len(pairs))
	attempted := make([]bool, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.Concurrency)

	for i, pair := range pairs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			attempted[i] = true
			results[i] = u.processPair(gctx, logger, pair)
			if results[i].Err != nil {
				return fmt.Errorf("pair %s: %w", pair, results[i].Err)
			}
			return nil
		})
	}
	err := g.Wait()

	for i := range pairs {
		if attempted[i] {
			report.Results = append(report.Results, results[i])
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

// runIsolated attempts every pair regardless of earlier failures. Pairs
// skipped because ctx ended are reported as part of the returned error.
func (u *Updater) runIsolated(ctx context.Context, logger *slog.Logger, pairs []model.Pair, report *Report) error {
	results := make([]PairResult, len(pairs))
	attempted := make([]bool, len(pairs))

	var g errgroup.Group
	g.SetLimit(u.cfg.Concurrency)

	for i, pair := range pairs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			attempted[i] = true
			results[i] = u.processPair(ctx, logger, pair)
			return nil
		})
	}
	_ = g.Wait()

	skipped := 0
	for i := range pairs {
		if attempted[i] {
			report.Results = append(report.Results, results[i])
		} else {
			skipped++
		}
	}

	err := report.Err()
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = errors.Join(err, fmt.Errorf("%d of %d pairs not attempted: %w", skipped, len(pairs), ctxErr))
	}
	return err
}

// processPair fetches, aggregates and writes one pair.
func (u *Updater) processPair(ctx context.Context, logger *slog.Logger, pair model.Pair) (res PairResult) {
	start := time.Now()
	res.Pair = pair
	logger = logger.With("pair", pair.String())

	defer func() {
		res.Duration = time.Since(start)
		u.metrics.ObservePair(pair, res.Listings, res.Points, res.Duration, res.Err)
	}()

	logger.Debug("state", "state", StateFetching)
	listings, err := u.source.GetAuctions(ctx, pair.RealmID, pair.AuctionHouseID)
	if err != nil {
		res.Err = err
		logger.Warn("pair failed", "state", StateFailed, "err", err)
		return res
	}

	logger.Debug("state", "state", StateAggregating, "listings", len(listings))
	res.Listings = len(listings)
	result := aggregate.Aggregate(listings)
	res.Items = len(result)

	points := writer.BuildPoints(result, pair, u.names, u.now())

	logger.Debug("state", "state", StateWriting, "points", len(points))
	if err := u.writer.WritePoints(ctx, points); err != nil {
		res.Err = err
		logger.Warn("pair failed", "state", StateFailed, "err", err)
		return res
	}
	res.Points = len(points)

	logger.Info("pair updated",
		"listings", res.Listings,
		"items", res.Items,
		"points", res.Points,
		"duration", time.Since(start),
	)
	return res
}
