package config

// Config is the top-level structure of a growth run file (YAML or TOML).
type Config struct {
	IO           IOConf           `yaml:"io" toml:"io"`
	Network      NetworkConf      `yaml:"network" toml:"network"`
	MonteCarlo   MonteCarloConf   `yaml:"monte_carlo" toml:"monte_carlo"`
	Potential    PotentialConf    `yaml:"potential" toml:"potential"`
	Optimisation OptimisationConf `yaml:"optimisation" toml:"optimisation"`
}

// IOConf controls output files.
type IOConf struct {
	// PrefixOut is prepended to every output file name ("<prefix>_analysis.dat").
	PrefixOut string `yaml:"prefix_out" toml:"prefix_out"`
}

// Seed geometries.
const (
	GeometryHexagonal = "hexagonal" // honeycomb patch of SeedRows × SeedCols hexagons
	GeometryRing      = "ring"      // one ring of SeedRingSize units
	GeometryPair      = "pair"      // two rings of SeedRingSize units sharing a side
)

// NetworkConf holds the network properties.
type NetworkConf struct {
	TargetRings  int     `yaml:"target_rings" toml:"target_rings"`
	MinRingSize  int     `yaml:"min_ring_size" toml:"min_ring_size"`
	MaxRingSize  int     `yaml:"max_ring_size" toml:"max_ring_size"`
	Geometry     string  `yaml:"geometry" toml:"geometry"`
	SeedRows     int     `yaml:"seed_rows" toml:"seed_rows"`
	SeedCols     int     `yaml:"seed_cols" toml:"seed_cols"`
	SeedRingSize int     `yaml:"seed_ring_size" toml:"seed_ring_size"`
	RingCapacity int     `yaml:"ring_capacity" toml:"ring_capacity"`
	BondLength   float64 `yaml:"bond_length" toml:"bond_length"`
}

// MonteCarloConf holds the ring selection settings.
type MonteCarloConf struct {
	Seed        int64   `yaml:"seed" toml:"seed"`
	Temperature float64 `yaml:"temperature" toml:"temperature"`
}

// PotentialConf holds the harmonic force constants and rest lengths.
type PotentialConf struct {
	KMX  float64 `yaml:"k_mx" toml:"k_mx"`
	R0MX float64 `yaml:"r0_mx" toml:"r0_mx"`
	KXX  float64 `yaml:"k_xx" toml:"k_xx"`
	R0XX float64 `yaml:"r0_xx" toml:"r0_xx"`
	KMM  float64 `yaml:"k_mm" toml:"k_mm"`
	R0MM float64 `yaml:"r0_mm" toml:"r0_mm"`
}

// OptimisationConf holds the geometry optimisation settings.
type OptimisationConf struct {
	GlobalPre     bool    `yaml:"global_pre" toml:"global_pre"`
	GlobalPost    bool    `yaml:"global_post" toml:"global_post"`
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	LineSearchInc float64 `yaml:"line_search_inc" toml:"line_search_inc"`
	Convergence   float64 `yaml:"convergence" toml:"convergence"`
	LocalShells   int     `yaml:"local_shells" toml:"local_shells"`
}
