package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/cmd/openspace/options"
	"github.com/katalvlaran/openspace/internal/config"
)

func newWatchCommand(root *options.RootOptions) *cobra.Command {
	o := options.NewRunOptions()
	debounce := config.DefaultDebounce

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Seat everyone and seat again whenever the configuration changes",
		Args:  cobra.NoArgs,
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
			if _, err = seat(cmd.Context(), cfg, o, log, cmd.OutOrStdout()); err != nil {
				return err
			}

			w, err := config.NewWatcher(root.ConfigPath, debounce, log)
			if err != nil {
				return err
			}
			log.Info("watching configuration", zap.String("path", root.ConfigPath))

			return w.Run(cmd.Context(), func(cfg *config.Config) {
				o.Apply(cfg, cmd.Flags().Changed)
				if _, err := seat(cmd.Context(), cfg, o, log, cmd.OutOrStdout()); err != nil {
					log.Error("seating failed", zap.Error(err))
				}
			})
		},
	}
	o.AddFlags(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "Quiet period after a change before seating again")

	return cmd
}
