package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rickgao/auction-stats/internal/model"
)

// Metrics holds the collectors for one process. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ListingsFetched *prometheus.CounterVec
	PointsWritten   *prometheus.CounterVec
	PairFailures    *prometheus.CounterVec
	PairDuration    *prometheus.HistogramVec
	LastSuccess     prometheus.Gauge
}

// New creates metrics registered on a private registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	pairLabels := []string{"realm_id", "ah_id"}

	return &Metrics{
		registry: reg,
		ListingsFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "listings_fetched_total",
				Help:      "Auction listings fetched per pair.",
			},
			pairLabels,
		),
		PointsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "points_written_total",
				Help:      "Aggregate points written per pair.",
			},
			pairLabels,
		),
		PairFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pair_failures_total",
				Help:      "Failed pairs by error kind.",
			},
			append(pairLabels, "kind"),
		),
		PairDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "pair_duration_seconds",
				Help:      "Time to fetch, aggregate and write one pair.",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			pairLabels,
		),
		LastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that finished without errors.",
		}),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObservePair records a finished pair.
func (m *Metrics) ObservePair(pair model.Pair, listings, points int, d time.Duration, err error) {
	if m == nil {
		return
	}
	realm, ah := strconv.FormatInt(pair.RealmID, 10), strconv.FormatInt(pair.AuctionHouseID, 10)

	m.ListingsFetched.WithLabelValues(realm, ah).Add(float64(listings))
	m.PointsWritten.WithLabelValues(realm, ah).Add(float64(points))
	m.PairDuration.WithLabelValues(realm, ah).Observe(d.Seconds())
	if err != nil {
		m.PairFailures.WithLabelValues(realm, ah, Kind(err)).Inc()
	}
}

// MarkSuccess records the completion time of a clean run.
func (m *Metrics) MarkSuccess(t time.Time) {
	if m == nil {
		return
	}
	m.LastSuccess.Set(float64(t.Unix()))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Kind names the error category of err for the failure label.
func Kind(err error) string {
	switch {
	case errors.Is(err, model.ErrAuth):
		return "auth"
	case errors.Is(err, model.ErrTransport):
		return "transport"
	case errors.Is(err, model.ErrParse):
		return "parse"
	case errors.Is(err, model.ErrWrite):
		return "write"
	case errors.Is(err, model.ErrConfig):
		return "config"
	default:
		return "other"
	}
}
