package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/openspace/cmd/openspace/options"
	"github.com/katalvlaran/openspace/internal/config"
	"github.com/katalvlaran/openspace/internal/roster"
	"github.com/katalvlaran/openspace/preference"
)

func newPreferCommand(root *options.RootOptions) *cobra.Command {
	o := options.NewPreferOptions()

	cmd := &cobra.Command{
		Use:   "prefer NAME",
		Short: "Set who a person sits with or apart from and save it to the configuration",
		Example: `  openspace prefer Aleksei --with Brigi,Imran --without Jens
  openspace prefer Aleksei --clear`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			cfg, err := config.LoadFile(root.ConfigPath)
			if err != nil {
				return err
			}
			cfg.SetPreference(args[0], o.With, o.Without)
			if err = checkNames(cfg); err != nil {
				return err
			}
			if err = config.Save(root.ConfigPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved preferences of %s to %s\n", args[0], root.ConfigPath)

			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

// checkNames validates the preferences against the roster when there is
// one, so unknown names are caught before they are saved.
func checkNames(cfg *config.Config) error {
	prefs, err := cfg.PreferenceList()
	if err != nil {
		return err
	}
	if cfg.InputFile == "" {
		return nil
	}
	people, err := roster.Load(cfg.InputFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = preference.Build(people, prefs)

	return err
}

func newAddPersonCommand(root *options.RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add-person NAME",
		Short: "Append a person to the roster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(root.ConfigPath)
			if err != nil {
				return err
			}
			if cfg.InputFile == "" {
				return errNoInput
			}
			if err = roster.Append(cfg.InputFile, preference.Person(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", args[0], cfg.InputFile)

			return nil
		},
	}
}
