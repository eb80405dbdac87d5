package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"poemlens/internal/version"
)

// versionCmd prints the poemlens version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the poemlens version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("poemlens v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
