package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/outline"
	"github.com/aretw0/outline/pkg/core"
	"github.com/aretw0/outline/pkg/list"
)

var (
	lsPattern     string
	changeMessage string
)

// matcher is implemented by repositories able to filter listings by pattern.
type matcher interface {
	ListMatching(ctx context.Context, pattern string) ([]core.Summary, error)
}

var newCmd = &cobra.Command{
	Use:   "new [id]",
	Short: "Create an empty document",
	Long:  `Create an empty document. Without an id a random UUID is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		id := uuid.NewString()
		if len(args) == 1 {
			id = args[0]
		}

		if _, err := svc.CreateDocument(reasonContext(cmd.Context(), "create "+id), id); err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Document created: %s\n", id)
		return nil
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List documents in the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		var summaries []core.Summary
		if lsPattern != "" {
			m, ok := svc.Repository().(matcher)
			if !ok {
				return fmt.Errorf("repository does not support pattern listing")
			}
			summaries, err = m.ListMatching(cmd.Context(), lsPattern)
		} else {
			summaries, err = svc.ListDocuments(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}

		if done, err := printStructured(cmd.OutOrStdout(), summaries); done {
			return err
		}
		for _, s := range summaries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d paragraphs\t%d items\t%d lists\n", s.ID, s.Paragraphs, s.Items, len(s.NumIDs))
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a document from the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		if err := svc.DeleteDocument(reasonContext(cmd.Context(), "delete "+args[0]), args[0]); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Document deleted: %s\n", args[0])
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a document",
	Long: `Print the paragraphs of a document with their index, nesting and list
membership. Structured output prints the stored snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		doc, err := svc.GetDocument(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}

		if done, err := printStructured(cmd.OutOrStdout(), doc.Snapshot()); done {
			return err
		}
		for i, p := range doc.Paragraphs() {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, renderParagraph(p))
		}
		return nil
	},
}

// renderParagraph draws p indented two spaces per list level, prefixed by
// its membership as [numID.level].
func renderParagraph(p *outline.Paragraph) string {
	depth := int(p.LeftIndent.Inches()/list.IndentPerLevel + 0.5)
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	if p.Numbering != nil {
		fmt.Fprintf(&sb, "[%d.%d] ", p.Numbering.NumID, p.Numbering.Level)
	}
	sb.WriteString(p.Text)
	return sb.String()
}

// reasonContext carries the commit message for versioned stores: -m when
// given, otherwise a docs commit describing the action.
func reasonContext(ctx context.Context, action string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	msg := outline.FormatChangeReason(outline.CommitTypeDocs, "outline", action, "")
	if changeMessage != "" {
		msg = outline.AppendFooter(changeMessage)
	}
	return context.WithValue(ctx, core.ChangeReasonKey, msg)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&changeMessage, "message", "m", "", "Commit message for versioned stores")
	lsCmd.Flags().StringVar(&lsPattern, "pattern", "", "Only list documents whose ID matches this glob (supports **)")

	rootCmd.AddCommand(newCmd, lsCmd, rmCmd, showCmd)
}
