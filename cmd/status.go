package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	_ "github.com/melih-ucgun/converge/internal/adapters/file"
	"github.com/melih-ucgun/converge/internal/adapters/ui"
	"github.com/melih-ucgun/converge/internal/config"
	"github.com/melih-ucgun/converge/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Audit every declared resource against the live system",
	Long: `Verifies each manifest resource without short-circuiting and prints a
drift table. Nothing is changed; state is always re-derived from the live
system.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgFile, _ := cmd.Flags().GetString("config")
		out := ui.NewPtermUI()

		ctx := newSystemContext()
		cfg, err := config.Load(cfgFile)
		if err != nil {
			out.Error(fmt.Sprintf("Configuration error: %v", err))
			os.Exit(1)
		}

		reality := core.NewReality(ctx.Logger)
		if err := config.Declare(cfg, ctx, reality); err != nil {
			out.Error(fmt.Sprintf("Declaration error: %v", err))
			os.Exit(1)
		}

		results := core.CheckDrift(ctx, reality)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KIND\tKEY\tSTATUS\tDETAIL")
		fmt.Fprintln(w, "----\t---\t------\t------")

		drifted := 0
		for _, res := range results {
			if res.Status != core.StatusSynced {
				drifted++
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Kind, res.Key, res.Status, res.Detail)
		}
		w.Flush()

		if drifted == 0 {
			out.Success(fmt.Sprintf("All %d resources in sync.", len(results)))
		} else {
			out.Warning(fmt.Sprintf("%d of %d resources drifted.", drifted, len(results)))
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
