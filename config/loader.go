package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mx2/core"
	"github.com/katalvlaran/mx2/optimize"
)

// ErrUnknownFormat indicates a config file extension other than .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Default returns the configuration used for every key a file leaves out. The potential
// is relaxed for the default bond length of 1.
func Default() *Config {
	return &Config{
		IO: IOConf{PrefixOut: "mx2"},
		Network: NetworkConf{
			TargetRings:  30,
			MinRingSize:  4,
			MaxRingSize:  10,
			Geometry:     GeometryHexagonal,
			SeedRows:     3,
			SeedCols:     3,
			SeedRingSize: 6,
			RingCapacity: core.DefaultRingCapacity,
			BondLength:   1,
		},
		MonteCarlo: MonteCarloConf{Seed: 0, Temperature: 0.01},
		Potential: PotentialConf{
			KMX: 1, R0MX: 0.5,
			KXX: 1, R0XX: math.Sqrt(3) / 2,
			KMM: 1, R0MM: 1,
		},
		Optimisation: OptimisationConf{
			GlobalPost:    true,
			MaxIterations: optimize.DefaultMaxIterations,
			LineSearchInc: optimize.DefaultLineSearchInc,
			Convergence:   optimize.DefaultConvergence,
			LocalShells:   1,
		},
	}
}

// Load reads path, decodes it over Default by extension (YAML or TOML) and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err = Validate(cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// Model returns the potential as a core.PotentialModel in optimize parameter order.
func (c *Config) Model() core.PotentialModel {
	m := make(core.PotentialModel, optimize.ModelSize)
	m[optimize.KMX] = c.Potential.KMX
	m[optimize.R0MX] = c.Potential.R0MX
	m[optimize.KXX] = c.Potential.KXX
	m[optimize.R0XX] = c.Potential.R0XX
	m[optimize.KMM] = c.Potential.KMM
	m[optimize.R0MM] = c.Potential.R0MM

	return m
}
