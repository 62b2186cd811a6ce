// Package driver implements the option handling shared by the toolchain
// drivers: an ordered list of typed matchers that turns argv into an
// immutable Config, typed errors with exit-code mapping, and the runner used
// to hand work to an external collaborator.
package driver

import (
	"path/filepath"
	"slices"
)

// Config is the parsed configuration of a driver invocation.
// Parse returns it by value; nothing mutates it afterwards.
type Config struct {
	// Inputs holds positional inputs in the order they were given.
	Inputs []string
	// Output is the explicit output path, empty when not given.
	Output string
	// DisableFinalize selects copy-only mode.
	DisableFinalize bool
	// Help requests the usage text instead of running.
	Help bool
	// OptFlags are the fixed flags handed to the optimizer.
	OptFlags []string
	// RunOpt is the command template expanded by Expand.
	RunOpt string
}

func (c Config) clone() Config {
	c.Inputs = slices.Clone(c.Inputs)
	c.OptFlags = slices.Clone(c.OptFlags)
	return c
}

// Action applies a matched token's captured value to the configuration being built.
type Action func(cfg *Config, value string) error

// SetOutput overwrites Output with the cleaned path.
func SetOutput(cfg *Config, value string) error {
	cfg.Output = filepath.Clean(value)
	return nil
}

// SetDisableFinalize turns on copy-only mode.
func SetDisableFinalize(cfg *Config, _ string) error {
	cfg.DisableFinalize = true
	return nil
}

// SetHelp requests usage output.
func SetHelp(cfg *Config, _ string) error {
	cfg.Help = true
	return nil
}

// AppendInput appends the cleaned path to Inputs.
func AppendInput(cfg *Config, value string) error {
	cfg.Inputs = append(cfg.Inputs, filepath.Clean(value))
	return nil
}
