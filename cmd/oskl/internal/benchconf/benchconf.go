// Package benchconf loads the workload description used by `oskl bench`.
package benchconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values, used for any field left out of the YAML file.
const (
	DefaultSeed          = "oskl"
	DefaultInitialLength = 10000
	DefaultOps           = 100000
	DefaultMaxElem       = 1 << 16
	DefaultCheckEvery    = 10000
	DefaultPreenEvery    = 0
)

// Config describes a randomized workload run against an OSkipList and a
// sorted slice model.
type Config struct {
	// Seed is hashed to seed both the workload generator and the list.
	Seed string `yaml:"seed"`

	// InitialLength elements are added before the workload starts.
	InitialLength int `yaml:"initial_length"`

	// Ops is the number of random operations to run.
	Ops int `yaml:"ops"`

	// MaxElem bounds element values to [0, MaxElem).
	MaxElem int `yaml:"max_elem"`

	// CheckEvery is the number of operations between full comparisons
	// with the model. Zero checks only at the end.
	CheckEvery int `yaml:"check_every"`

	// PreenEvery is the number of operations between calls to Preen. Zero
	// never preens.
	PreenEvery int `yaml:"preen_every"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:          DefaultSeed,
		InitialLength: DefaultInitialLength,
		Ops:           DefaultOps,
		MaxElem:       DefaultMaxElem,
		CheckEvery:    DefaultCheckEvery,
		PreenEvery:    DefaultPreenEvery,
	}
}

// Load reads and validates a YAML workload file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading workload config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing workload config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.InitialLength < 0:
		return errors.New("initial_length must not be negative")
	case c.Ops < 0:
		return errors.New("ops must not be negative")
	case c.MaxElem <= 0:
		return errors.New("max_elem must be positive")
	case c.CheckEvery < 0:
		return errors.New("check_every must not be negative")
	case c.PreenEvery < 0:
		return errors.New("preen_every must not be negative")
	}
	return nil
}
