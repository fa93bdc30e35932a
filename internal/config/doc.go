// Package config loads configuration from a YAML file with environment
// variable overrides.
//
// Every key can be overridden by an AH_ prefixed variable with dots
// replaced by underscores, e.g. AH_BATTLENET_CLIENT_SECRET or
// AH_INFLUXDB_TOKEN. The auction house list accepts
// AH_AUCTION_HOUSES="4440/2,4440/6".
package config
