package config

import (
	typehelpers "github.com/turbot/go-kit/types"
)

// DefaultStationName is used when the config does not name the station.
const DefaultStationName = "weather-station"

// Config is the root of an observe config file.
type Config struct {
	Station *Station `hcl:"station,block"`
}

// Station declares a weather station: its name, the displays to attach and
// the readings to replay through it, in order.
type Station struct {
	Name     *string  `hcl:"name,optional"`
	Displays []string `hcl:"displays,optional"`
	Readings []int    `hcl:"readings,optional"`
}

// StationName returns the configured station name, falling back to
// DefaultStationName when not set.
func (c *Config) StationName() string {
	name := typehelpers.SafeString(c.Station.Name)
	if name == "" {
		return DefaultStationName
	}
	return name
}
