// Package config loads the run configuration of the openspace command.
//
// A configuration file is JSON when its name ends in ".json" and YAML
// otherwise. Environment variables prefixed OPENSPACE_ override file
// values. Only the checks needed to build an engine input are applied.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/openspace/engine"
	"github.com/katalvlaran/openspace/preference"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OPENSPACE_"

var (
	// ErrNoTables indicates a configuration without any table.
	ErrNoTables = errors.New("config: at least one table is required")

	// ErrBadCapacity indicates a negative or missing table capacity.
	ErrBadCapacity = errors.New("config: table capacity must be positive")
)

// Preferences is the with/without map form: person -> names.
type Preferences struct {
	With    map[string][]string `json:"with,omitempty" yaml:"with,omitempty"`
	Without map[string][]string `json:"without,omitempty" yaml:"without,omitempty"`
}

// Config is one run configuration.
type Config struct {
	InputFile  string `json:"input_file" yaml:"input_file" env:"INPUT"`
	OutputFile string `json:"output_file" yaml:"output_file" env:"OUTPUT"`
	ReportFile string `json:"report_file,omitempty" yaml:"report_file,omitempty" env:"REPORT"`

	NumberOfTables int   `json:"number_of_tables" yaml:"number_of_tables" env:"TABLES"`
	TableCapacity  int   `json:"table_capacity" yaml:"table_capacity" env:"CAPACITY"`
	Capacities     []int `json:"capacities,omitempty" yaml:"capacities,omitempty" env:"CAPACITIES" envSeparator:","`

	AutoBalance bool `json:"auto_balance,omitempty" yaml:"auto_balance,omitempty" env:"AUTO_BALANCE"`
	AutoGrow    bool `json:"auto_grow,omitempty" yaml:"auto_grow,omitempty" env:"AUTO_GROW"`

	// Seed fixes the seating draw; nil draws a new one every run.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty" env:"SEED"`

	Preferences Preferences `json:"preferences" yaml:"preferences"`

	// Requests are free-text lines such as "Aleksei wants Brigi".
	Requests []string `json:"requests,omitempty" yaml:"requests,omitempty"`
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err = ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads path as written, without environment overrides or
// validation. Use it before editing and saving a file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(data, isJSON(path))
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses a configuration document.
func Decode(data []byte, asJSON bool) (*Config, error) {
	cfg := &Config{OutputFile: "seating.csv"}
	var err error
	if asJSON {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with OPENSPACE_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks that a room can be built.
func (c *Config) Validate() error {
	if len(c.Capacities) > 0 {
		for _, n := range c.Capacities {
			if n < 0 {
				return fmt.Errorf("%w: %d", ErrBadCapacity, n)
			}
		}
		return nil
	}
	if c.NumberOfTables <= 0 {
		return ErrNoTables
	}
	// Auto-balanced rooms derive their capacities.
	if !c.AutoBalance && c.TableCapacity <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, c.TableCapacity)
	}

	return nil
}

// Save writes cfg to path in the format its name selects.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(cfg, "", "    ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// SetPreference replaces the with and without lists of person. Empty lists
// remove the entry.
func (c *Config) SetPreference(person string, with, without []string) {
	set := func(m *map[string][]string, names []string) {
		if len(names) == 0 {
			delete(*m, person)
			return
		}
		if *m == nil {
			*m = make(map[string][]string)
		}
		(*m)[person] = names
	}
	set(&c.Preferences.With, with)
	set(&c.Preferences.Without, without)
}

// PreferenceList returns the map preferences followed by the parsed
// requests.
func (c *Config) PreferenceList() ([]preference.Preference, error) {
	prefs := preference.FromLists(c.Preferences.With, c.Preferences.Without)
	parsed, err := preference.ParseAll(c.Requests)
	if err != nil {
		return nil, err
	}

	return append(prefs, parsed...), nil
}

// Room returns the engine room description.
func (c *Config) Room() engine.RoomSpec {
	return engine.RoomSpec{
		Capacities:  c.Capacities,
		Tables:      c.NumberOfTables,
		Capacity:    c.TableCapacity,
		AutoBalance: c.AutoBalance,
	}
}

// Input builds the engine input for people.
func (c *Config) Input(people []preference.Person) (engine.Input, error) {
	prefs, err := c.PreferenceList()
	if err != nil {
		return engine.Input{}, err
	}

	return engine.Input{People: people, Preferences: prefs, Room: c.Room()}, nil
}

// Options returns the engine options the configuration implies.
func (c *Config) Options() []engine.Option {
	var opts []engine.Option
	if c.Seed != nil {
		opts = append(opts, engine.WithSeed(*c.Seed))
	}
	if c.AutoGrow {
		opts = append(opts, engine.WithAutoGrow())
	}

	return opts
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
