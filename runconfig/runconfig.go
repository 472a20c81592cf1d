// Package runconfig loads PlaceOptions/RouteOptions overrides from a YAML
// document, so a deployment can tune SA and Pathfinder tunables without a
// code change (spec.md §6 lists these as user-suppliable options; the
// wire format itself is left to the caller, per spec.md's "no wire
// format, no CLI" non-goal for the core, but a config loader is ambient
// tooling any real deployment of this core would carry).
package runconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/mapper/mapper"
)

// Config is the top-level YAML document shape.
type Config struct {
	Seed                 uint64  `yaml:"seed"`
	MoveAttempts         int     `yaml:"move_attempts"`
	InitialTemperature   float64 `yaml:"initial_temperature"`
	WarmTargetAcceptance float64 `yaml:"warm_target_acceptance"`
	MaxHop               int     `yaml:"max_hop"`
	MaxRounds            int     `yaml:"max_rounds"`
	EnableAddress        bool    `yaml:"enable_address"`
	EnableFlatness       *bool   `yaml:"enable_flatness"`

	MaxIterations int     `yaml:"max_iterations"`
	HFactor       float64 `yaml:"h_factor"`
	PInitial      float64 `yaml:"p_initial"`
	PGrowth       float64 `yaml:"p_growth"`
}

// Load parses a YAML config document from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse parses a YAML config document from raw bytes.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// PlaceOptions converts the config into mapper.PlaceOptions, leaving
// strategy-object fields (Warmer/Cooler/Limiter/Doner/MoveGen) at their
// zero value so Place substitutes the spec defaults.
func (c Config) PlaceOptions() mapper.PlaceOptions {
	return mapper.PlaceOptions{
		Seed:                 c.Seed,
		MoveAttempts:         c.MoveAttempts,
		InitialTemperature:   c.InitialTemperature,
		WarmTargetAcceptance: c.WarmTargetAcceptance,
		MaxHop:               c.MaxHop,
		MaxRounds:            c.MaxRounds,
		EnableAddress:        c.EnableAddress,
		EnableFlatness:       c.EnableFlatness,
	}
}

// RouteOptions converts the config into mapper.RouteOptions.
func (c Config) RouteOptions() mapper.RouteOptions {
	return mapper.RouteOptions{
		MaxIterations: c.MaxIterations,
		HFactor:       c.HFactor,
		PInitial:      c.PInitial,
		PGrowth:       c.PGrowth,
	}
}
