package config

import (
	"fmt"
	"time"

	"github.com/rickgao/auction-stats/internal/model"
)

var validRegions = map[string]bool{"us": true, "eu": true, "kr": true, "tw": true}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	if c.BattleNet.Region == "" {
		return configError("battlenet.region is required")
	}
	if !validRegions[c.BattleNet.Region] {
		return configError("battlenet.region must be one of: us, eu, kr, tw, got %q", c.BattleNet.Region)
	}
	if c.BattleNet.ClientID == "" {
		return configError("battlenet.client_id is required")
	}
	if c.BattleNet.ClientSecret == "" {
		return configError("battlenet.client_secret is required")
	}
	if c.BattleNet.TokenURL == "" {
		return configError("battlenet.token_url is required")
	}
	if c.BattleNet.Timeout <= 0 {
		return configError("battlenet.timeout must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return configError("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return configError("logging.format must be one of: json, text")
	}

	return nil
}

// ValidateUpdate checks the additional settings the update command needs.
func (c *Config) ValidateUpdate() error {
	if err := c.Validate(); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case BackendInfluxDB:
		if err := c.InfluxDB.validate("influxdb"); err != nil {
			return err
		}
	case BackendTimescale:
		if err := c.Timescale.validate("timescale"); err != nil {
			return err
		}
	default:
		return configError("storage.backend must be one of: influxdb, timescale, got %q", c.Storage.Backend)
	}

	seen := make(map[AuctionHouseConfig]bool, len(c.AuctionHouses))
	for i, ah := range c.AuctionHouses {
		if ah.Realm <= 0 || ah.AuctionHouse <= 0 {
			return configError("auction_houses[%d]: realm and auction_house must be positive", i)
		}
		if seen[ah] {
			return configError("auction_houses[%d]: duplicate pair %d/%d", i, ah.Realm, ah.AuctionHouse)
		}
		seen[ah] = true
	}

	if c.Update.Concurrency < 1 {
		return configError("update.concurrency must be >= 1")
	}

	return nil
}

// Pairs returns the configured pairs in file order.
func (c *Config) Pairs() []model.Pair {
	pairs := make([]model.Pair, len(c.AuctionHouses))
	for i, ah := range c.AuctionHouses {
		pairs[i] = model.Pair{RealmID: ah.Realm, AuctionHouseID: ah.AuctionHouse}
	}
	return pairs
}

func (db *InfluxDBConfig) validate(prefix string) error {
	if db.Host == "" {
		return configError("%s.host is required", prefix)
	}
	if db.Org == "" {
		return configError("%s.org is required", prefix)
	}
	if db.Token == "" {
		return configError("%s.token is required", prefix)
	}
	if db.Bucket == "" {
		return configError("%s.bucket is required", prefix)
	}
	if db.Timeout < time.Second {
		return configError("%s.timeout must be at least 1s", prefix)
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return configError("%s.host is required", prefix)
	}
	if db.Name == "" {
		return configError("%s.name is required", prefix)
	}
	if db.User == "" {
		return configError("%s.user is required", prefix)
	}
	if db.Password == "" {
		return configError("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return configError("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return configError("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return configError("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrConfig, fmt.Sprintf(format, args...))
}
