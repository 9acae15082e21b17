package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kisueer/kisueeros/pkg/core/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadConfig(logging.Nop())
		out := cmd.OutOrStdout()
		if err != nil {
			fmt.Fprintf(out, "warning: %v (showing defaults)\n", err)
		}

		fmt.Fprintf(out, "file: %s\n", store.Path())
		for _, e := range store.Entries() {
			fmt.Fprintf(out, "%s: %s\n", e.Key, e.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
