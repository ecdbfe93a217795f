package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melih-ucgun/converge/internal/consts"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the converge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", consts.AppName, consts.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
