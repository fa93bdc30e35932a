package writer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rickgao/auction-stats/internal/model"
)

// DB is the subset of *pgxpool.Pool the Timescale writer needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS auctions (
	time        TIMESTAMPTZ NOT NULL,
	run_id      UUID        NOT NULL,
	item_id     BIGINT      NOT NULL,
	realm_id    BIGINT      NOT NULL,
	ah_id       BIGINT      NOT NULL,
	item_name   TEXT,
	count       BIGINT      NOT NULL,
	total_items BIGINT      NOT NULL,
	min_buyout  BIGINT      NOT NULL
);
SELECT create_hypertable('auctions', 'time', if_not_exists => TRUE);
CREATE INDEX IF NOT EXISTS auctions_item_time_idx ON auctions (realm_id, ah_id, item_id, time DESC);
`

const insertSQL = `
	INSERT INTO auctions (time, run_id, item_id, realm_id, ah_id, item_name, count, total_items, min_buyout)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// auctionRow represents a row to be inserted into the auctions hypertable.
type auctionRow struct {
	Time       time.Time
	RunID      uuid.UUID
	ItemID     int64
	RealmID    int64
	AHID       int64
	ItemName   *string // NULL when the item is unknown
	Count      int64
	TotalItems int64
	MinBuyout  int64
}

// TimescaleWriter inserts points into the auctions hypertable.
type TimescaleWriter struct {
	db     DB
	runID  uuid.UUID
	logger *slog.Logger
}

// NewTimescaleWriter creates a writer that tags every row with runID.
func NewTimescaleWriter(db DB, runID uuid.UUID, logger *slog.Logger) *TimescaleWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimescaleWriter{
		db:     db,
		runID:  runID,
		logger: logger,
	}
}

// EnsureSchema creates the hypertable if it does not exist.
func (w *TimescaleWriter) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: ensure auctions schema: %w", model.ErrWrite, err)
	}
	return nil
}

// WritePoints inserts all points with a single pgx.Batch. The batch runs as
// one implicit transaction, so a rejected row discards the whole pair.
func (w *TimescaleWriter) WritePoints(ctx context.Context, points []model.MetricPoint) error {
	if len(points) == 0 {
		return nil
	}

	start := time.Now()

	rows := make([]auctionRow, 0, len(points))
	for _, p := range points {
		row, err := w.transform(p)
		if err != nil {
			return fmt.Errorf("%w: %w", model.ErrWrite, err)
		}
		rows = append(rows, row)
	}

	if err := w.batchInsert(ctx, rows); err != nil {
		return fmt.Errorf("%w: insert %d rows: %w", model.ErrWrite, len(rows), err)
	}

	w.logger.Debug("wrote points",
		"backend", "timescale",
		"count", len(rows),
		"duration", time.Since(start),
	)
	return nil
}

// Close is a no-op; the pool is owned by the caller.
func (w *TimescaleWriter) Close() error {
	return nil
}

// transform converts a MetricPoint to an auctionRow.
func (w *TimescaleWriter) transform(p model.MetricPoint) (auctionRow, error) {
	row := auctionRow{
		Time:       p.Time,
		RunID:      w.runID,
		Count:      p.Fields[FieldCount],
		TotalItems: p.Fields[FieldTotalItems],
		MinBuyout:  p.Fields[FieldMinBuyout],
	}

	var err error
	if row.ItemID, err = tagInt(p.Tags, TagItemID); err != nil {
		return auctionRow{}, err
	}
	if row.RealmID, err = tagInt(p.Tags, TagRealmID); err != nil {
		return auctionRow{}, err
	}
	if row.AHID, err = tagInt(p.Tags, TagAHID); err != nil {
		return auctionRow{}, err
	}
	if name, ok := p.Tags[TagItemName]; ok {
		row.ItemName = &name
	}

	return row, nil
}

// batchInsert inserts rows using pgx.Batch.
func (w *TimescaleWriter) batchInsert(ctx context.Context, rows []auctionRow) error {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(insertSQL,
			r.Time, r.RunID, r.ItemID, r.RealmID, r.AHID, r.ItemName, r.Count, r.TotalItems, r.MinBuyout)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}

func tagInt(tags map[string]string, key string) (int64, error) {
	v, ok := tags[key]
	if !ok {
		return 0, fmt.Errorf("point missing tag %s", key)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tag %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}
