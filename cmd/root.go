package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/melih-ucgun/converge/internal/consts"
	"github.com/melih-ucgun/converge/internal/core"
)

var rootCmd = &cobra.Command{
	Use:   consts.AppName,
	Short: "Declare your system. Converge makes it so.",
	Long: `Converge is a declarative configuration management tool: describe the
desired end-state of files, directories and symlinks and converge the live
system to match, idempotently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verboseCount int

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Environment variables from a local .env are available to manifest
	// templates via sprig's env function.
	_ = godotenv.Load()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	// PTerm output to stderr to keep stdout clean for piping.
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.DefaultHeader.Writer = os.Stderr

	rootCmd.PersistentFlags().StringP("config", "c", consts.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "Increase verbosity level (-v, -vv, -vvv)")
}

// newSystemContext builds the run context with a logger tuned to the
// requested verbosity.
func newSystemContext() *core.SystemContext {
	level := core.LevelInfo
	switch {
	case verboseCount >= 3:
		level = core.LevelTrace
	case verboseCount >= 1:
		level = core.LevelDebug
	}
	return core.NewSystemContext(core.NewDefaultLogger(os.Stderr, level))
}
