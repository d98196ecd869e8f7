// Package options holds the flag sets of the openspace command.
package options

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/openspace/engine"
	"github.com/katalvlaran/openspace/internal/config"
)

// DefaultConfig is the configuration path used without --config.
const DefaultConfig = "config.json"

// RootOptions are shared by every subcommand.
type RootOptions struct {
	// ConfigPath is the JSON or YAML configuration file.
	ConfigPath string

	// LogLevel is a zap level name.
	LogLevel string

	// Development switches to console logs.
	Development bool
}

// NewRootOptions returns the defaults.
func NewRootOptions() *RootOptions {
	return &RootOptions{ConfigPath: DefaultConfig, LogLevel: "info"}
}

// AddFlags registers the shared flags.
func (o *RootOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "Path to the configuration file (JSON or YAML)")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn or error")
	fs.BoolVar(&o.Development, "dev", o.Development, "Human-readable console logs")
}

// RunOptions override the configuration for one seating run.
type RunOptions struct {
	Input  string
	Output string
	Report string

	Seed      int64
	AddTables int
	AutoGrow  bool
	Quiet     bool
}

// NewRunOptions returns the defaults.
func NewRunOptions() *RunOptions {
	return &RunOptions{}
}

// AddFlags registers the run flags.
func (o *RunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, "input", "i", o.Input, "Roster CSV, overrides input_file")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Seating CSV, overrides output_file")
	fs.StringVar(&o.Report, "report", o.Report, "Text summary file, overrides report_file")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Seed for a reproducible seating, overrides seed")
	fs.IntVar(&o.AddTables, "add-table", o.AddTables, "Add N tables and spread people evenly over all of them")
	fs.BoolVar(&o.AutoGrow, "auto-grow", o.AutoGrow, "Add tables when the room is too small")
	fs.BoolVarP(&o.Quiet, "quiet", "q", o.Quiet, "Do not print the seating")
}

// Validate rejects nonsensical values.
func (o *RunOptions) Validate() error {
	if o.AddTables < 0 {
		return fmt.Errorf("--add-table must not be negative, got %d", o.AddTables)
	}

	return nil
}

// Apply copies the flags the user set onto cfg. changed reports whether a
// flag was given on the command line.
func (o *RunOptions) Apply(cfg *config.Config, changed func(name string) bool) {
	if o.Input != "" {
		cfg.InputFile = o.Input
	}
	if o.Output != "" {
		cfg.OutputFile = o.Output
	}
	if o.Report != "" {
		cfg.ReportFile = o.Report
	}
	if changed("seed") {
		seed := o.Seed
		cfg.Seed = &seed
	}
	if o.AutoGrow {
		cfg.AutoGrow = true
	}
}

// EngineOptions returns the engine options not carried by the configuration.
func (o *RunOptions) EngineOptions() []engine.Option {
	if o.AddTables > 0 {
		return []engine.Option{engine.WithExtraTables(o.AddTables)}
	}

	return nil
}

// PreferOptions are the lists given to the prefer subcommand.
type PreferOptions struct {
	With    []string
	Without []string
	Clear   bool
}

// NewPreferOptions returns the defaults.
func NewPreferOptions() *PreferOptions {
	return &PreferOptions{}
}

// AddFlags registers the prefer flags.
func (o *PreferOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&o.With, "with", "w", o.With, "Names to sit with, comma separated")
	fs.StringSliceVarP(&o.Without, "without", "x", o.Without, "Names to sit apart from, comma separated")
	fs.BoolVar(&o.Clear, "clear", o.Clear, "Remove all preferences of the person")
}

// ErrNoLists is returned when prefer gets neither lists nor --clear.
var ErrNoLists = errors.New("give --with, --without or --clear")

// Validate requires something to do.
func (o *PreferOptions) Validate() error {
	if !o.Clear && len(o.With) == 0 && len(o.Without) == 0 {
		return ErrNoLists
	}
	if o.Clear && (len(o.With) > 0 || len(o.Without) > 0) {
		return errors.New("--clear cannot be combined with --with or --without")
	}

	return nil
}

// SampleOptions shape a generated trial roster.
type SampleOptions struct {
	People   int
	Want     float64
	Avoid    float64
	Tables   int
	Capacity int
	Seed     int64
	Roster   string
}

// NewSampleOptions returns the defaults.
func NewSampleOptions() *SampleOptions {
	return &SampleOptions{People: 24, Want: 0.06, Avoid: 0.02, Tables: 4, Capacity: 6, Roster: "people.csv"}
}

// AddFlags registers the sample flags.
func (o *SampleOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.People, "people", "n", o.People, "Number of people")
	fs.Float64Var(&o.Want, "want", o.Want, "Chance that a pair wants to sit together")
	fs.Float64Var(&o.Avoid, "avoid", o.Avoid, "Chance that a pair wants to sit apart")
	fs.IntVar(&o.Tables, "tables", o.Tables, "Number of tables")
	fs.IntVar(&o.Capacity, "capacity", o.Capacity, "Seats per table")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Seed for a reproducible sample")
	fs.StringVar(&o.Roster, "roster", o.Roster, "Roster file name, next to the configuration")
}

// Validate rejects rooms that cannot be built.
func (o *SampleOptions) Validate() error {
	if o.Tables <= 0 || o.Capacity <= 0 {
		return fmt.Errorf("--tables and --capacity must be positive, got %d and %d", o.Tables, o.Capacity)
	}

	return nil
}
