package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/rickgao/auction-stats/internal/model"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AH"

// Load reads the YAML file at path (skipped when empty) and applies
// defaults and environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read config file: %w", model.ErrConfig, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		auctionHouseHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("%w: unmarshal config: %w", model.ErrConfig, err)
	}
	cfg.normalize()

	return &cfg, nil
}

// LoadAndValidate loads config and validates the settings every command
// needs.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// auctionHouseHook decodes a pair written as "4440/2" or as a two element
// list [4440, 2] in addition to the {realm, auction_house} mapping.
func auctionHouseHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(AuctionHouseConfig{})

	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != target {
			return data, nil
		}

		switch f.Kind() {
		case reflect.String:
			return parsePair(data.(string))
		case reflect.Slice, reflect.Array:
			items := reflect.ValueOf(data)
			if items.Len() != 2 {
				return nil, fmt.Errorf("auction house %v: want [realm, auction_house]", data)
			}
			return pairFromValues(items.Index(0).Interface(), items.Index(1).Interface())
		default:
			return data, nil
		}
	}
}

func parsePair(s string) (AuctionHouseConfig, error) {
	realm, ah, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return AuctionHouseConfig{}, fmt.Errorf("auction house %q: want realm/auction_house", s)
	}
	return pairFromValues(strings.TrimSpace(realm), strings.TrimSpace(ah))
}

func pairFromValues(realm, ah interface{}) (AuctionHouseConfig, error) {
	r, err := cast.ToInt64E(realm)
	if err != nil {
		return AuctionHouseConfig{}, fmt.Errorf("realm id %v: %w", realm, err)
	}
	a, err := cast.ToInt64E(ah)
	if err != nil {
		return AuctionHouseConfig{}, fmt.Errorf("auction house id %v: %w", ah, err)
	}
	return AuctionHouseConfig{Realm: r, AuctionHouse: a}, nil
}

// normalize folds case-insensitive enum values to their canonical form.
func (c *Config) normalize() {
	c.BattleNet.Region = strings.ToLower(strings.TrimSpace(c.BattleNet.Region))
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
