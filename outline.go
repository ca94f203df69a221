package outline

import (
	"log/slog"

	"github.com/aretw0/outline/internal/platform"
	"github.com/aretw0/outline/pkg/core"
	"github.com/aretw0/outline/pkg/git"
	"github.com/aretw0/outline/pkg/list"
)

// --- Types ---

// Document is a public alias for the core document model.
type Document = core.Document

// Paragraph is a public alias for a document paragraph.
type Paragraph = core.Paragraph

// Summary is a public alias for the listing summary of a document.
type Summary = core.Summary

// List is a public alias for the list handle.
type List = list.List

// ListOption configures NewList.
type ListOption = list.Option

// --- Configuration ---

// Option defines a functional option for configuring Outline.
type Option = platform.Option

// WithAutoInit creates the store directory (and git repository) when missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithVersioning enables or disables git versioning.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithForceTemp forces the store into a temporary directory.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist fails initialization if the store directory is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository injects a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter selects the storage adapter by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSystemDir sets the hidden directory name (e.g. ".outline").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithExtension sets the file format of new documents.
func WithExtension(ext string) Option {
	return platform.WithExtension(ext)
}

// WithSerializer registers a custom serializer for an extension.
func WithSerializer(ext string, s any) Option {
	return platform.WithSerializer(ext, s)
}

// WithStrict rejects unknown fields when reading snapshots.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithReadOnly opens the store without allowing writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new Outline Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Lists ---

// NewList starts a new list in doc, appending its paragraphs to the body.
func NewList(doc *Document, opts ...ListOption) *List {
	return list.New(doc, doc, opts...)
}

// AttachList wraps an existing numbering instance of doc.
func AttachList(doc *Document, numID, level int) *List {
	return list.Attach(doc, doc, numID, level)
}

// WithFormat selects the numbering format of a new list.
func WithFormat(format string) ListOption {
	return list.WithFormat(format)
}

// WithLevel sets the nesting depth of a new list.
func WithLevel(level int) ListOption {
	return list.WithLevel(level)
}

// --- Safety & Utils ---

// ResolvePath determines the directory a store actually uses.
func ResolvePath(userPath string, forceTemp bool) string {
	return platform.ResolvePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for a store root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// --- Semantic Commits ---

const (
	CommitTypeFeat  = git.CommitTypeFeat
	CommitTypeFix   = git.CommitTypeFix
	CommitTypeDocs  = git.CommitTypeDocs
	CommitTypeChore = git.CommitTypeChore
)

// FormatChangeReason builds a Conventional Commit message.
func FormatChangeReason(ctype, scope, subject, body string) string {
	return git.FormatCommitMessage(ctype, scope, subject, body)
}

// AppendFooter appends the Outline footer to an arbitrary message.
func AppendFooter(msg string) string {
	return git.AppendFooter(msg)
}
