package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/confkit"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the formats supported by this build",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range confkit.Formats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f, f.Ext())
		}
	},
}
