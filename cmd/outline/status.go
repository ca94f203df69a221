package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		state := svc.State()
		if done, err := printStructured(cmd.OutOrStdout(), state); done {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
