package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/melih-ucgun/converge/internal/adapters/file"
	"github.com/melih-ucgun/converge/internal/adapters/ui"
	"github.com/melih-ucgun/converge/internal/config"
	"github.com/melih-ucgun/converge/internal/core"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Converge the system to the declared configuration",
	Long: `Reads the manifest, verifies every declared resource against the live
system and realizes the ones that are out of state. Running apply twice in a
row makes no changes on the second run.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgFile, _ := cmd.Flags().GetString("config")
		out := ui.NewPtermUI()

		ctx := newSystemContext()
		cfg, err := config.Load(cfgFile)
		if err != nil {
			out.Error(fmt.Sprintf("Configuration error: %v", err))
			os.Exit(1)
		}

		report := core.Apply(ctx, func(r *core.Reality) error {
			return config.Declare(cfg, ctx, r)
		})

		switch report.Status {
		case core.StatusConverged:
			out.Success("Everything up to date, nothing to do.")
		case core.StatusApplied:
			out.Success(fmt.Sprintf("Configuration applied (%d resources, %s).",
				report.Resources, report.Duration.Round(time.Millisecond)))
		case core.StatusFailed:
			for i, cause := range core.CauseChain(report.Err) {
				if i == 0 {
					out.Error(cause)
				} else {
					out.Error(" → " + cause)
				}
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
