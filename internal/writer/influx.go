package writer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxapi "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/rickgao/auction-stats/internal/model"
)

// InfluxConfig holds InfluxDB v2 connection settings.
type InfluxConfig struct {
	Host    string
	Org     string
	Token   string
	Bucket  string
	Timeout time.Duration
}

// InfluxWriter writes points through the blocking InfluxDB write API.
type InfluxWriter struct {
	client influxdb2.Client
	api    influxapi.WriteAPIBlocking
	bucket string
	logger *slog.Logger
}

// NewInfluxWriter creates a writer for cfg.Bucket in cfg.Org.
func NewInfluxWriter(cfg InfluxConfig, logger *slog.Logger) *InfluxWriter {
	if logger == nil {
		logger = slog.Default()
	}

	opts := influxdb2.DefaultOptions()
	if cfg.Timeout > 0 {
		opts.SetHTTPRequestTimeout(timeoutSeconds(cfg.Timeout))
	}

	client := influxdb2.NewClientWithOptions(cfg.Host, cfg.Token, opts)
	return &InfluxWriter{
		client: client,
		api:    client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		bucket: cfg.Bucket,
		logger: logger,
	}
}

// WritePoints sends all points in one write request.
func (w *InfluxWriter) WritePoints(ctx context.Context, points []model.MetricPoint) error {
	if len(points) == 0 {
		return nil
	}

	start := time.Now()

	batch := make([]*write.Point, 0, len(points))
	for _, p := range points {
		fields := make(map[string]interface{}, len(p.Fields))
		for k, v := range p.Fields {
			fields[k] = v
		}
		batch = append(batch, write.NewPoint(p.Measurement, p.Tags, fields, p.Time))
	}

	if err := w.api.WritePoint(ctx, batch...); err != nil {
		return fmt.Errorf("%w: write %d points to bucket %s: %w", model.ErrWrite, len(points), w.bucket, err)
	}

	w.logger.Debug("wrote points",
		"backend", "influxdb",
		"count", len(points),
		"duration", time.Since(start),
	)
	return nil
}

// Close releases the client's idle connections.
func (w *InfluxWriter) Close() error {
	w.client.Close()
	return nil
}

// timeoutSeconds converts d to whole seconds, rounding up so that a short
// positive timeout never becomes 0, which the client treats as no timeout.
func timeoutSeconds(d time.Duration) uint {
	return uint((d + time.Second - 1) / time.Second)
}
