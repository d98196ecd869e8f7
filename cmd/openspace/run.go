package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/cmd/openspace/options"
	"github.com/katalvlaran/openspace/engine"
	"github.com/katalvlaran/openspace/internal/config"
	"github.com/katalvlaran/openspace/internal/report"
	"github.com/katalvlaran/openspace/internal/roster"
)

var errNoInput = errors.New("no roster: set input_file or pass --input")

func newRunCommand(root *options.RootOptions) *cobra.Command {
	o := options.NewRunOptions()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seat everyone once and write the results",
		Example: `  openspace run -c config.yaml
  openspace run --seed 42 --add-table 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			log, err := logger(root)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg, err := config.Load(root.ConfigPath)
			if err != nil {
				return err
			}
			o.Apply(cfg, cmd.Flags().Changed)

			_, err = seat(cmd.Context(), cfg, o, log, cmd.OutOrStdout())

			return err
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// seat runs the engine for cfg, prints the seating unless quiet and writes
// the CSV and text files.
func seat(ctx context.Context, cfg *config.Config, o *options.RunOptions, log *zap.Logger, out io.Writer) (*engine.Result, error) {
	if cfg.InputFile == "" {
		return nil, errNoInput
	}
	people, err := roster.Load(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	in, err := cfg.Input(people)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	opts := append(cfg.Options(), o.EngineOptions()...)
	opts = append(opts, engine.WithLogger(log))
	res, err := engine.Run(ctx, in, opts...)
	if err != nil {
		return nil, err
	}

	if !o.Quiet {
		printSeating(out, res)
	}
	if cfg.OutputFile != "" {
		if err = report.SaveCSV(cfg.OutputFile, report.Rows(res, in.Preferences)); err != nil {
			return nil, err
		}
		log.Info("seating written", zap.String("path", cfg.OutputFile))
	}
	if cfg.ReportFile != "" {
		if err = report.SaveText(cfg.ReportFile, res, in.Preferences); err != nil {
			return nil, err
		}
		log.Info("summary written", zap.String("path", cfg.ReportFile))
	}

	return res, nil
}
