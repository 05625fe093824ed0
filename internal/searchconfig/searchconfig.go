// Package searchconfig loads tuning parameters for internal/search from
// a TOML file: search depth, the root worker count, and evaluator
// weight overrides. Loading never fails outward — a missing file or an
// unparseable field falls back to DefaultConfig, mirroring the
// teacher's config package's "never returns an error" LoadConfig.
package searchconfig

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultDepth is the fixed search depth used when no config file
// overrides it (§4.7: the search is depth-bounded, not time-bounded).
const DefaultDepth = 6

// SearchConfig tunes internal/search without touching code.
type SearchConfig struct {
	// Depth is the fixed negamax search depth (§4.7).
	Depth int `toml:"depth"`
	// RootWorkers is the size of the root-parallel worker pool. Zero
	// means auto-detect from cpuid.CPU.LogicalCores.
	RootWorkers int `toml:"root_workers"`
	// Weights holds the [weights] table read from the file. Nothing in
	// internal/search or internal/eval reads it: evaluation and move
	// ordering always use eval's built-in material constants.
	Weights WeightOverrides `toml:"weights"`
}

// WeightOverrides mirrors eval's material constants, one field per
// piece type. A field the file omits stays zero. The values are only
// loaded; they are not applied to eval's weights.
type WeightOverrides struct {
	King   int `toml:"king"`
	Queen  int `toml:"queen"`
	Rook   int `toml:"rook"`
	Bishop int `toml:"bishop"`
	Knight int `toml:"knight"`
	Pawn   int `toml:"pawn"`
}

// DefaultConfig returns the built-in tuning: fixed depth, auto-detected
// worker count, and no weight overrides.
func DefaultConfig() SearchConfig {
	return SearchConfig{
		Depth:       DefaultDepth,
		RootWorkers: 0,
		Weights:     WeightOverrides{},
	}
}

// Load reads path as TOML into a SearchConfig, defaulting any field
// the file omits and falling back to DefaultConfig entirely if path
// does not exist or fails to parse. This never returns an error,
// matching the teacher's permissive LoadConfig and spec §7's FEN
// parsing stance extended to configuration.
func Load(path string) SearchConfig {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	var file SearchConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return cfg
	}

	if file.Depth > 0 {
		cfg.Depth = file.Depth
	}
	if file.RootWorkers > 0 {
		cfg.RootWorkers = file.RootWorkers
	}
	cfg.Weights = file.Weights

	return cfg
}
