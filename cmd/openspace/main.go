// Command openspace seats a roster of people at tables, keeping those who
// asked to sit together at one table and those who asked to stay apart at
// different ones.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/openspace/cmd/openspace/options"
	"github.com/katalvlaran/openspace/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "openspace:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	o := options.NewRootOptions()

	cmd := &cobra.Command{
		Use:   "openspace",
		Short: "Seat people at open-space tables by their preferences",
		Long: `openspace reads a roster and a configuration of tables and preferences,
groups people who want to sit together, splits groups that contain people
who avoid each other, and writes the seating as CSV and text.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	o.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newRunCommand(o),
		newWatchCommand(o),
		newPreferCommand(o),
		newAddPersonCommand(o),
		newSampleCommand(o),
	)

	return cmd
}

// logger builds the command logger once flags are parsed.
func logger(o *options.RootOptions) (*zap.Logger, error) {
	return logging.New(o.LogLevel, o.Development)
}
