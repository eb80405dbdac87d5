package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"poemlens/internal/config"
)

// configCmd prints the resolved configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		config.Load()
		all := config.All()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %s\n", k, all[k])
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
