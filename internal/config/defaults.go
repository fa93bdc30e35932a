package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for optional configuration fields.
const (
	DefaultTokenURL         = "https://oauth.battle.net/token"
	DefaultLocale           = "en_US"
	DefaultAPITimeout       = 30 * time.Second
	DefaultStorageBackend   = BackendInfluxDB
	DefaultInfluxTimeout    = 30 * time.Second
	DefaultDBPort           = 5432
	DefaultDBSSLMode        = "prefer"
	DefaultMaxConns         = 4
	DefaultMinConns         = 1
	DefaultConcurrency      = 1
	DefaultMetricsNamespace = "auctionstats"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// Storage backends.
const (
	BackendInfluxDB  = "influxdb"
	BackendTimescale = "timescale"
)

// setDefaults registers every key with viper. Keys must be known to viper
// for environment overrides to reach Unmarshal, so secrets are registered
// with empty defaults too.
func setDefaults(v *viper.Viper) {
	// Battle.net
	v.SetDefault("battlenet.region", "")
	v.SetDefault("battlenet.client_id", "")
	v.SetDefault("battlenet.client_secret", "")
	v.SetDefault("battlenet.token_url", DefaultTokenURL)
	v.SetDefault("battlenet.api_url", "")
	v.SetDefault("battlenet.locale", DefaultLocale)
	v.SetDefault("battlenet.timeout", DefaultAPITimeout)

	// Storage
	v.SetDefault("storage.backend", DefaultStorageBackend)

	v.SetDefault("influxdb.host", "")
	v.SetDefault("influxdb.org", "")
	v.SetDefault("influxdb.token", "")
	v.SetDefault("influxdb.bucket", "")
	v.SetDefault("influxdb.timeout", DefaultInfluxTimeout)

	v.SetDefault("timescale.host", "")
	v.SetDefault("timescale.port", DefaultDBPort)
	v.SetDefault("timescale.name", "")
	v.SetDefault("timescale.user", "")
	v.SetDefault("timescale.password", "")
	v.SetDefault("timescale.ssl_mode", DefaultDBSSLMode)
	v.SetDefault("timescale.max_conns", DefaultMaxConns)
	v.SetDefault("timescale.min_conns", DefaultMinConns)

	// Pairs
	v.SetDefault("auction_houses", []AuctionHouseConfig{})

	// Update
	v.SetDefault("update.concurrency", DefaultConcurrency)
	v.SetDefault("update.isolate_pairs", false)

	v.SetDefault("items.path", "")

	// Metrics
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)

	// Logging
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
