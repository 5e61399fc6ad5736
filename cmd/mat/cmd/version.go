package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mAT/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Versionen an",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("meinALGEBRATRAINER %s\n", version.Platform)
		fmt.Printf("  core %s\n", version.Core)
		fmt.Printf("  cli  %s\n", version.CLI)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
