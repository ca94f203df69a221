package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/outline/pkg/core"
	"github.com/aretw0/outline/pkg/list"
)

// run executes the CLI against store with fresh global flags and returns stdout.
func run(t *testing.T, store string, args ...string) (string, error) {
	t.Helper()

	verbose, dir, gitless, output, changeMessage = false, "", false, "text", ""
	listFormat, listLevel, listNumID, beforeIdx, lsPattern = list.FormatDecimal, 0, 0, 0, ""
	watchPattern, watchTypes = "**", nil
	resetChanged(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--dir", store, "--gitless"))

	err := rootCmd.Execute()
	return stdout.String(), err
}

// resetChanged clears pflag's Changed marks left by earlier executions.
func resetChanged(c *cobra.Command) {
	unmark := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(unmark)
	c.PersistentFlags().VisitAll(unmark)
	for _, sub := range c.Commands() {
		resetChanged(sub)
	}
}

func mustRun(t *testing.T, store string, args ...string) string {
	t.Helper()
	out, err := run(t, store, args...)
	require.NoError(t, err, "outline %v", args)
	return out
}

func TestCLI_ListWorkflow(t *testing.T) {
	store := t.TempDir()

	mustRun(t, store, "init")
	assert.Contains(t, mustRun(t, store, "new", "minutes"), "Document created: minutes")

	numID := mustRun(t, store, "list", "create", "minutes", "Budget", "Hiring")
	assert.Equal(t, "1\n", numID)

	subID := mustRun(t, store, "list", "create", "minutes", "--format", "bullet", "--level", "1")
	assert.Equal(t, "2\n", subID)

	mustRun(t, store, "list", "add", "minutes", "Travel", "--num-id", "2", "--level", "1")
	mustRun(t, store, "para", "add", "minutes", "Notes follow", "--level", "1")

	assert.Equal(t, "Budget\nHiring\n", mustRun(t, store, "list", "items", "minutes", "--num-id", "1"))
	assert.Equal(t, "Travel\n", mustRun(t, store, "list", "items", "minutes", "--num-id", "2"))

	show := mustRun(t, store, "show", "minutes")
	assert.Contains(t, show, "  0  [1.0] Budget\n")
	assert.Contains(t, show, "  2    [2.1] Travel\n")
	assert.Contains(t, show, "  3    Notes follow\n")

	ls := mustRun(t, store, "ls")
	assert.Contains(t, ls, "minutes\t4 paragraphs\t3 items\t2 lists\n")
}

func TestCLI_InsertBefore(t *testing.T) {
	store := t.TempDir()
	mustRun(t, store, "init")
	mustRun(t, store, "new", "plan")
	mustRun(t, store, "list", "create", "plan", "A", "B")

	mustRun(t, store, "list", "add", "plan", "Z", "--num-id", "1", "--before", "0")
	mustRun(t, store, "para", "add", "plan", "note", "--level", "1", "--before", "1")
	mustRun(t, store, "list", "add", "plan", "Y", "--num-id", "1", "--level", "1", "--before", "3")

	// Appending after an insert must not reuse the previous anchor.
	mustRun(t, store, "list", "add", "plan", "C", "--num-id", "1")

	assert.Equal(t, "Z\nA\nY\nB\nC\n", mustRun(t, store, "list", "items", "plan", "--num-id", "1"))

	show := mustRun(t, store, "show", "plan")
	assert.Equal(t, "  0  [1.0] Z\n"+
		"  1    note\n"+
		"  2  [1.0] A\n"+
		"  3    [1.1] Y\n"+
		"  4  [1.0] B\n"+
		"  5  [1.0] C\n", show)

	_, err := run(t, store, "list", "add", "plan", "X", "--num-id", "1", "--before", "7")
	assert.ErrorContains(t, err, "no paragraph at index 7")
	_, err = run(t, store, "para", "add", "plan", "X", "--before", "-1")
	assert.ErrorContains(t, err, "no paragraph at index -1")

	assert.Equal(t, show, mustRun(t, store, "show", "plan"), "failed inserts leave the document untouched")
}

func TestCLI_StructuredOutput(t *testing.T) {
	store := t.TempDir()
	mustRun(t, store, "init")
	mustRun(t, store, "new", "a")
	mustRun(t, store, "new", "notes/b")

	out := mustRun(t, store, "ls", "--pattern", "notes/**", "-o", "json")

	var summaries []core.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "notes/b", summaries[0].ID)

	status := mustRun(t, store, "status", "-o", "yaml")
	assert.Contains(t, status, "repository_type: fs-repository")
}

func TestCLI_Errors(t *testing.T) {
	store := t.TempDir()
	mustRun(t, store, "init")

	_, err := run(t, store, "show", "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = run(t, store, "ls", "-o", "xml")
	assert.Error(t, err)

	mustRun(t, store, "new", "doc")
	_, err = run(t, store, "new", "doc")
	assert.Error(t, err, "duplicate document")
}

func TestCLI_Version(t *testing.T) {
	out := mustRun(t, t.TempDir(), "version")
	assert.Contains(t, out, "outline version ")
}

func TestRenderParagraph(t *testing.T) {
	doc := core.NewDocument("d")
	p := doc.Body().AddParagraph("item")
	p.LeftIndent = core.Inches(0.5)
	p.SetNumbering(3, 2)

	assert.Equal(t, "    [3.2] item", renderParagraph(p))
}

func TestCLI_NewGeneratesID(t *testing.T) {
	store := t.TempDir()
	mustRun(t, store, "init")

	out := mustRun(t, store, "new")
	id := strings.TrimSpace(strings.TrimPrefix(out, "Document created: "))
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated id %q", id)
}
