// Package config loads the optional TOML run configuration for the CLI
// driver: default step count, trace verbosity, and memory size. Grounded
// on lookbusy1344-arm_emulator, an ARM emulator in the retrieved pack that
// configures itself the same way (see SPEC_FULL.md "AMBIENT STACK").
package config

import (
	"github.com/BurntSushi/toml"
)

// Config is the run configuration. Any field left unset in the TOML file
// keeps its Default() value.
type Config struct {
	Steps      uint32 `toml:"steps"`
	MemorySize int    `toml:"memory_size"`
	Trace      bool   `toml:"trace"`
	Color      bool   `toml:"color"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Steps:      10000,
		MemorySize: 1 << 20,
		Trace:      false,
		Color:      false,
	}
}

// Load reads and merges a TOML configuration file over Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
