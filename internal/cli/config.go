// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/farthest/traversal"
)

// Input/output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Emit targets.
const (
	EmitIndices = "indices"
	EmitRows    = "rows"
)

// Log settings.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the resolved configuration of the select command.
// Zero-valued pointer fields mean "not set".
type Config struct {
	K         int            `yaml:"k"`
	P         float64        `yaml:"p"`
	Threshold int            `yaml:"threshold"`
	Mode      traversal.Mode `yaml:"mode"`
	Start     *int           `yaml:"start,omitempty"`
	Seed      *int64         `yaml:"seed,omitempty"`
	Workers   int            `yaml:"workers"`

	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig describes how points are read.
type InputConfig struct {
	// Format is csv or json; empty means detect from the file extension.
	Format string `yaml:"format"`

	// Header skips the first CSV record.
	Header bool `yaml:"header"`
}

// OutputConfig describes what is written.
type OutputConfig struct {
	Format string `yaml:"format"`
	Emit   string `yaml:"emit"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		P:         traversal.DefaultMinkowski,
		Threshold: traversal.DefaultThreshold,
		Mode:      traversal.DefaultMode,
		Workers:   traversal.DefaultWorkers,
		Output:    OutputConfig{Format: FormatCSV, Emit: EmitIndices},
		Log:       LogConfig{Level: "warn", Format: LogFormatText},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return DecodeConfig(data)
}

// DecodeConfig decodes YAML bytes over DefaultConfig.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return cfg, nil
}

// Validate checks values the library does not check itself.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be >= 0, got %d", ErrBadConfig, c.Threshold)
	}
	if c.Input.Format != "" {
		if err := checkFormat(c.Input.Format); err != nil {
			return err
		}
	}
	if err := checkFormat(c.Output.Format); err != nil {
		return err
	}
	switch c.Output.Emit {
	case EmitIndices, EmitRows:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEmit, c.Output.Emit)
	}

	return nil
}

// Options converts the configuration into traversal options.
func (c Config) Options() []traversal.Option {
	opts := []traversal.Option{
		traversal.WithMinkowski(c.P),
		traversal.WithThreshold(c.Threshold),
		traversal.WithMode(c.Mode),
		traversal.WithWorkers(c.Workers),
	}
	if c.Seed != nil {
		opts = append(opts, traversal.WithSeed(*c.Seed))
	}
	if c.Start != nil {
		opts = append(opts, traversal.WithStart(*c.Start))
	}

	return opts
}

func checkFormat(f string) error {
	switch f {
	case FormatCSV, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
