// Package config loads run configuration for the emulator from a YAML
// document, with CLI flags taking precedence over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultMemorySize matches emu.NewCPU's own default, kept independent
// so config has no import-time dependency on emu.
const defaultMemorySize = 1 << 20

// CSRPoke sets an initial value in a CSR before the program starts.
type CSRPoke struct {
	CSR   uint16 `yaml:"csr"`
	Value int32  `yaml:"value"`
}

// Config holds a run configuration: how much memory to give the CPU,
// whether to trace execution, and any CSRs to pre-seed.
type Config struct {
	MemorySize uint32    `yaml:"memory_size"`
	Trace      bool      `yaml:"trace"`
	CSRPokes   []CSRPoke `yaml:"csr_pokes"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{MemorySize: defaultMemorySize}
}

// Load reads and parses a YAML configuration file at path. A missing
// MemorySize in the file falls back to the default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.MemorySize == 0 {
		cfg.MemorySize = defaultMemorySize
	}

	return cfg, nil
}
