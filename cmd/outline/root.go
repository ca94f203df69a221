package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/outline"
	"github.com/aretw0/outline/pkg/core"
)

var (
	verbose bool
	dir     string
	gitless bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "outline",
	Short: "Paragraph documents with numbered and bulleted lists",
	Long: `Outline stores paragraph documents as YAML or JSON snapshots, optionally
versioned with Git, and groups their paragraphs into nested lists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		switch output {
		case "text", "json", "yaml":
			return nil
		default:
			return fmt.Errorf("unknown output %q (want text, json or yaml)", output)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", "", "Store directory (default: nearest store root or CWD)")
	rootCmd.PersistentFlags().BoolVar(&gitless, "gitless", false, "Do not version changes with Git")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
}

// storePath resolves --dir, falling back to the nearest store root above the CWD.
func storePath() (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get CWD: %w", err)
	}
	if root, err := outline.FindRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// openService opens the store for commands that expect it to exist.
func openService() (*core.Service, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}

	opts := []outline.Option{
		outline.WithMustExist(true),
		outline.WithLogger(slog.Default()),
	}
	if gitless {
		opts = append(opts, outline.WithVersioning(false))
	}

	svc, err := outline.New(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return svc, nil
}

// printStructured writes v as JSON or YAML according to --output.
// It reports false for text output, leaving rendering to the caller.
func printStructured(w io.Writer, v any) (bool, error) {
	switch output {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	}
	return false, nil
}
