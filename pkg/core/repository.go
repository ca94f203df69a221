package core

import "context"

// Repository defines the contract for storing and retrieving documents.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism.
type Repository interface {
	// Save persists a document. It creates if not exists, or updates if it does.
	Save(ctx context.Context, doc *Document) error

	// Get retrieves a document by its ID. Missing documents yield ErrNotFound.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns a summary of every stored document.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes a document by its ID.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (e.g., create directories, git init).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by repositories that can report changes.
type Watchable interface {
	// Watch emits an Event for every change to a document whose ID matches pattern.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

type contextKey string

// ChangeReasonKey is the context key for passing specific change reasons (commit messages) during Save/Delete operations.
const ChangeReasonKey contextKey = "change_reason"
