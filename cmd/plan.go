package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/melih-ucgun/converge/internal/adapters/file"
	"github.com/melih-ucgun/converge/internal/adapters/ui"
	"github.com/melih-ucgun/converge/internal/config"
	"github.com/melih-ucgun/converge/internal/core"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the changes apply would make",
	Long: `Declares the manifest without touching the system and prints every
resource that is out of state, with a content diff where available.`,
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

		pending := 0
		for _, res := range reality.Resources() {
			ok, err := res.Verify(ctx)
			if err != nil {
				out.Error(fmt.Sprintf("Could not verify %s: %v", res.Describe(), err))
				os.Exit(1)
			}
			if ok {
				continue
			}

			pending++
			out.Warning(fmt.Sprintf("Would realize %s", res.Describe()))
			if differ, ok := res.(core.Differ); ok {
				if diff, err := differ.Diff(ctx); err == nil && diff != "" {
					out.Println(diff)
				}
			}
		}

		if pending == 0 {
			out.Success("Everything up to date, nothing to do.")
			return
		}
		out.Info(fmt.Sprintf("%d of %d resources would change.", pending, reality.Len()))
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
