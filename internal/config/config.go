package config

import "time"

// Config is the root configuration.
type Config struct {
	BattleNet     BattleNetConfig      `mapstructure:"battlenet"`
	Storage       StorageConfig        `mapstructure:"storage"`
	InfluxDB      InfluxDBConfig       `mapstructure:"influxdb"`
	Timescale     DBConfig             `mapstructure:"timescale"`
	AuctionHouses []AuctionHouseConfig `mapstructure:"auction_houses"`
	Update        UpdateConfig         `mapstructure:"update"`
	Items         ItemsConfig          `mapstructure:"items"`
	Metrics       MetricsConfig        `mapstructure:"metrics"`
	Logging       LoggingConfig        `mapstructure:"logging"`
}

// BattleNetConfig holds Battle.net API settings.
type BattleNetConfig struct {
	Region       string        `mapstructure:"region"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	TokenURL     string        `mapstructure:"token_url"`
	APIURL       string        `mapstructure:"api_url"` // Empty = https://{region}.api.blizzard.com
	Locale       string        `mapstructure:"locale"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// StorageConfig selects the time-series backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "influxdb" or "timescale"
}

// InfluxDBConfig holds InfluxDB v2 settings.
type InfluxDBConfig struct {
	Host    string        `mapstructure:"host"`
	Org     string        `mapstructure:"org"`
	Token   string        `mapstructure:"token"`
	Bucket  string        `mapstructure:"bucket"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"ssl_mode"`
	MaxConns int    `mapstructure:"max_conns"`
	MinConns int    `mapstructure:"min_conns"`
}

// AuctionHouseConfig is one (connected realm, auction house) pair to poll.
type AuctionHouseConfig struct {
	Realm        int64 `mapstructure:"realm"`
	AuctionHouse int64 `mapstructure:"auction_house"`
}

// UpdateConfig controls how pairs are processed.
type UpdateConfig struct {
	Concurrency  int  `mapstructure:"concurrency"`
	IsolatePairs bool `mapstructure:"isolate_pairs"` // Record per-pair failures instead of stopping
}

// ItemsConfig points at an alternative item name dataset.
type ItemsConfig struct {
	Path string `mapstructure:"path"` // Empty = bundled dataset
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Textfile  string `mapstructure:"textfile"` // node_exporter textfile output, empty = disabled
	Namespace string `mapstructure:"namespace"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
