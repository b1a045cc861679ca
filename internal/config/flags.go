package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagHGT    = flag.String("hgt", "", "HGT tile to load")
	flagSide   = flag.Int("side", 0, "Tile side length (0 = infer from file size)")
	flagStep   = flag.Int("step", 0, "Subsampling step for point output")
	flagSeed   = flag.Uint64("seed", 0, "Flight path seed (0 = random)")
	flagColor  = flag.Bool("color", false, "Export position+color vertices")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// explicitFlags returns the names of flags given on the command line, so a
// zero value such as -seed 0 still overrides the config file.
var explicitFlags = func() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags applies CLI flag overrides to the config. Only flags in set
// are applied.
func applyFlags(cfg *Config, set map[string]bool) {
	if set["debug"] && *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["hgt"] {
		cfg.Terrain.Path = *flagHGT
	}
	if set["side"] {
		cfg.Terrain.Side = *flagSide
	}
	if set["step"] {
		cfg.Terrain.Step = *flagStep
	}
	if set["seed"] {
		cfg.Flight.Seed = *flagSeed
	}
	if set["color"] {
		cfg.Export.Color = *flagColor
	}
}
