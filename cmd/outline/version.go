package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/outline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of outline",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "outline version %s\n", strings.TrimSpace(outline.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
