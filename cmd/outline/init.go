package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/outline"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an outline store",
	Long: `Initialize a new store in --dir (or the CWD). Unless --gitless is set
the directory also becomes a Git repository.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dir
		if path == "" {
			path = "."
		}

		_, err := outline.New(path,
			outline.WithAutoInit(true),
			outline.WithVersioning(!gitless),
			outline.WithLogger(slog.Default()),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Initialized empty outline store in", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
