package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/openspace/cmd/openspace/options"
	"github.com/katalvlaran/openspace/internal/config"
	"github.com/katalvlaran/openspace/sample"
)

func newSampleCommand(root *options.RootOptions) *cobra.Command {
	o := options.NewSampleOptions()

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a random roster and a configuration to try openspace with",
		Example: `  openspace sample --people 30 --tables 6 --capacity 6 -c trial.yaml
  openspace run -c trial.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			var opts []sample.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, sample.WithSeed(o.Seed))
			}
			sc, err := sample.Random(o.People, o.Want, o.Avoid, opts...)
			if err != nil {
				return err
			}

			dir := filepath.Dir(root.ConfigPath)
			rosterPath := filepath.Join(dir, o.Roster)
			var b strings.Builder
			b.WriteString("Name\n")
			for _, p := range sc.People {
				fmt.Fprintln(&b, p)
			}
			if err = os.WriteFile(rosterPath, []byte(b.String()), 0o644); err != nil {
				return err
			}

			cfg := &config.Config{
				InputFile:      rosterPath,
				OutputFile:     filepath.Join(dir, "seating.csv"),
				NumberOfTables: o.Tables,
				TableCapacity:  o.Capacity,
				Requests:       sc.Requests(),
			}
			if err = config.Save(root.ConfigPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d people to %s and %d requests to %s\n",
				len(sc.People), rosterPath, len(sc.Preferences), root.ConfigPath)

			return nil
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}
