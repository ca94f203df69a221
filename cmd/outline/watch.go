package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	lcadapter "github.com/aretw0/outline/pkg/adapters/lifecycle"
	"github.com/aretw0/outline/pkg/core"
)

var (
	watchPattern string
	watchTypes   []string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print document changes as they happen",
	Long: `Watch the store and print one line per changed document until interrupted.
--pattern restricts the documents (doublestar glob on IDs) and --types the
kinds of change (CREATE, MODIFY, DELETE).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			return fmt.Errorf("failed to watch: %w", err)
		}

		var opts []lcadapter.Option
		for _, t := range watchTypes {
			opts = append(opts, lcadapter.WithTypes(core.EventType(strings.ToUpper(t))))
		}

		source := lcadapter.NewSource(events, opts...)
		if err := source.Start(ctx); err != nil {
			return err
		}

		for e := range source.Events() {
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "**", "Only report documents whose ID matches this glob")
	watchCmd.Flags().StringSliceVar(&watchTypes, "types", nil, "Only report these change types")
	rootCmd.AddCommand(watchCmd)
}
