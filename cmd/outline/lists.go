package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/outline/pkg/core"
	"github.com/aretw0/outline/pkg/list"
)

var (
	listFormat string
	listLevel  int
	listNumID  int
	beforeIdx  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage numbered and bulleted lists",
}

var listCreateCmd = &cobra.Command{
	Use:   "create [id] [items...]",
	Short: "Start a new list in a document",
	Long: fmt.Sprintf(`Register a new numbering instance in the document and append the given
items to it. The new numbering id is printed.

Formats: %s`, strings.Join(list.Formats(), ", ")),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		var numID int
		ctx := reasonContext(cmd.Context(), "create list in "+args[0])
		_, err = svc.EditDocument(ctx, args[0], func(doc *core.Document) error {
			l := list.New(doc, doc,
				list.WithFormat(listFormat),
				list.WithLevel(listLevel),
				list.WithLogger(slog.Default()),
			)
			for _, text := range args[1:] {
				l.AddItem(text)
			}
			numID = l.NumID()
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to create list: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), numID)
		return nil
	},
}

var listAddCmd = &cobra.Command{
	Use:   "add [id] [text]",
	Short: "Add an item to an existing list",
	Long: `Append an item to the list identified by --num-id, or insert it before the
paragraph at index --before (see "outline show").`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editAt(cmd, args[0], "add item to "+args[0], func(l *list.List, anchor *core.Paragraph) error {
			if anchor == nil {
				l.AddItem(args[1])
				return nil
			}
			_, err := l.InsertItemBefore(anchor, args[1])
			return err
		})
	},
}

var listItemsCmd = &cobra.Command{
	Use:   "items [id]",
	Short: "Print the items of a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}

		doc, err := svc.GetDocument(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}

		items := list.Attach(doc, doc, listNumID, 0).Items()
		texts := make([]string, 0, len(items))
		for _, p := range items {
			texts = append(texts, p.Text)
		}

		if done, err := printStructured(cmd.OutOrStdout(), texts); done {
			return err
		}
		for _, text := range texts {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return nil
	},
}

var paraCmd = &cobra.Command{
	Use:   "para",
	Short: "Manage plain paragraphs",
}

var paraAddCmd = &cobra.Command{
	Use:   "add [id] [text]",
	Short: "Add a plain paragraph indented to a list level",
	Long: `Append a paragraph that belongs to no list but is indented like the items
at --level, or insert it before the paragraph at index --before.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editAt(cmd, args[0], "add paragraph to "+args[0], func(l *list.List, anchor *core.Paragraph) error {
			if anchor == nil {
				l.AddParagraph(args[1])
				return nil
			}
			_, err := l.InsertParagraphBefore(anchor, args[1])
			return err
		})
	},
}

// editAt attaches a list from the flags and runs fn on it, passing the
// paragraph at --before as anchor (nil when unset).
func editAt(cmd *cobra.Command, id, action string, fn func(l *list.List, anchor *core.Paragraph) error) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	_, err = svc.EditDocument(reasonContext(cmd.Context(), action), id, func(doc *core.Document) error {
		var anchor *core.Paragraph
		if cmd.Flags().Changed("before") {
			if anchor = doc.Body().At(beforeIdx); anchor == nil {
				return fmt.Errorf("no paragraph at index %d", beforeIdx)
			}
		}
		return fn(list.Attach(doc, doc, listNumID, listLevel), anchor)
	})
	if err != nil {
		return fmt.Errorf("failed to edit document: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Document updated: %s\n", id)
	return nil
}

func init() {
	listCreateCmd.Flags().StringVar(&listFormat, "format", list.FormatDecimal, "Numbering format")
	listCreateCmd.Flags().IntVar(&listLevel, "level", 0, "Nesting level (0 is outermost)")

	listAddCmd.Flags().IntVar(&listNumID, "num-id", 0, "Numbering id of the list")
	listAddCmd.Flags().IntVar(&listLevel, "level", 0, "Nesting level of the item")
	listAddCmd.Flags().IntVar(&beforeIdx, "before", 0, "Insert before the paragraph at this index")
	listAddCmd.MarkFlagRequired("num-id")

	listItemsCmd.Flags().IntVar(&listNumID, "num-id", 0, "Numbering id of the list")
	listItemsCmd.MarkFlagRequired("num-id")

	paraAddCmd.Flags().IntVar(&listLevel, "level", 0, "Indentation level")
	paraAddCmd.Flags().IntVar(&beforeIdx, "before", 0, "Insert before the paragraph at this index")

	listCmd.AddCommand(listCreateCmd, listAddCmd, listItemsCmd)
	paraCmd.AddCommand(paraAddCmd)
	rootCmd.AddCommand(listCmd, paraCmd)
}
