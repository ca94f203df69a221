// Package fs stores documents as snapshot files on the local filesystem,
// optionally versioned with git.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/outline/pkg/core"
	"github.com/aretw0/outline/pkg/git"
)

// DefaultSystemDir holds the cache and other internal state.
const DefaultSystemDir = ".outline"

// DefaultExtension is the format used for new documents.
const DefaultExtension = ".yaml"

// Repository implements core.Repository using the filesystem and Git.
type Repository struct {
	Path        string
	git         *git.Client
	cache       *cache
	config      Config
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastReconcile *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	AutoInit     bool
	Gitless      bool
	MustExist    bool
	ReadOnly     bool
	Strict       bool
	Logger       *slog.Logger
	SystemDir    string      // e.g. ".outline"
	Extension    string      // format of new documents, e.g. ".yaml" or ".json"
	ErrorHandler func(error) // receives runtime watcher failures
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if !strings.HasPrefix(config.Extension, ".") {
		config.Extension = "." + config.Extension
	}

	client := git.NewClient(config.Path, config.Logger)
	client.LockName = config.SystemDir + ".lock"

	return &Repository{
		Path:        config.Path,
		git:         client,
		config:      config,
		cache:       newCache(config.Path, config.SystemDir),
		serializers: DefaultSerializers(config.Strict),
	}
}

// RegisterSerializer adds or replaces the serializer used for files with extension ext.
func (r *Repository) RegisterSerializer(ext string, s Serializer) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializers[ext] = s
}

func (r *Repository) serializer(ext string) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.serializers[ext]
	return s, ok
}

// extensions returns the registered extensions, default first.
func (r *Repository) extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.serializers))
	for ext := range r.serializers {
		if ext != r.config.Extension {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return append([]string{r.config.Extension}, exts...)
}

// Initialize performs the necessary setup for the repository (mkdir, git init).
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", r.Path)
		}
	} else {
		if err := os.MkdirAll(r.Path, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if r.config.Gitless || r.config.ReadOnly {
		return nil
	}

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	wasNewRepo := false
	if !r.git.IsRepo() {
		if !r.config.AutoInit {
			return fmt.Errorf("path is not a git repository: %s", r.Path)
		}
		if err := r.git.Init(); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
		wasNewRepo = true
	}

	mod, err := r.ensureIgnore()
	if err != nil {
		return fmt.Errorf("failed to ensure .gitignore: %w", err)
	}

	if mod && wasNewRepo {
		if err := r.git.Add(".gitignore"); err != nil {
			return fmt.Errorf("failed to add .gitignore: %w", err)
		}
		msg := git.FormatCommitMessage(git.CommitTypeChore, "", fmt.Sprintf("configure %s ignore", r.config.SystemDir), "")
		if err := r.git.Commit(msg); err != nil {
			return fmt.Errorf("failed to commit .gitignore: %w", err)
		}
	}

	return nil
}

// ensureIgnore keeps the system directory and lock file out of version control.
func (r *Repository) ensureIgnore() (bool, error) {
	ignorePath := filepath.Join(r.Path, ".gitignore")
	wanted := []string{r.config.SystemDir + "/", r.git.LockName}

	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, entry := range wanted {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	out := string(content)
	if len(out) > 0 && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	out += strings.Join(missing, "\n") + "\n"

	return true, os.WriteFile(ignorePath, []byte(out), 0644)
}

// validateID rejects ids that would escape the store root.
func validateID(id string) error {
	if id == "" {
		return core.ErrEmptyID
	}
	clean := filepath.ToSlash(filepath.Clean(id))
	if filepath.IsAbs(id) || clean == ".." || strings.HasPrefix(clean, "../") || clean != filepath.ToSlash(id) {
		return fmt.Errorf("invalid document id %q", id)
	}
	return nil
}

// locate returns the relative path of the stored file for id, if any.
func (r *Repository) locate(id string) (string, bool) {
	for _, ext := range r.extensions() {
		rel := id + ext
		if info, err := os.Stat(filepath.Join(r.Path, rel)); err == nil && !info.IsDir() {
			return rel, true
		}
	}
	return "", false
}

// resolveID maps an absolute snapshot path back to its document id.
func (r *Repository) resolveID(path string) (string, error) {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	ext := filepath.Ext(rel)
	if _, ok := r.serializer(ext); !ok {
		return "", fmt.Errorf("unsupported extension %q", ext)
	}
	return strings.TrimSuffix(rel, ext), nil
}

// Save persists a document snapshot and commits it to Git.
//
// Workflow:
//  1. Validate ID and pick the file: an existing file keeps its format, new ones use the default extension.
//  2. Serialize the snapshot and write atomically to disk.
//  3. (If Git enabled) 'git add' and 'git commit' with context metadata.
func (r *Repository) Save(ctx context.Context, doc *core.Document) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if doc == nil {
		return core.ErrEmptyID
	}
	if err := validateID(doc.ID); err != nil {
		return err
	}

	rel, exists := r.locate(doc.ID)
	if !exists {
		rel = doc.ID + r.config.Extension
	}
	s, ok := r.serializer(filepath.Ext(rel))
	if !ok {
		return fmt.Errorf("no serializer for %s", filepath.Ext(rel))
	}

	data, err := s.Serialize(doc.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	fullPath := filepath.Join(r.Path, filepath.FromSlash(rel))
	if err := writeFileAtomic(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("document saved", "id", doc.ID, "path", rel)
	}

	if r.config.Gitless {
		return nil
	}

	unlock, err := r.git.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := r.git.Add(rel); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}
	if err := r.git.Commit(changeReason(ctx, "update "+doc.ID)); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

func changeReason(ctx context.Context, subject string) string {
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		return git.AppendFooter(val)
	}
	return git.FormatCommitMessage(git.CommitTypeDocs, "outline", subject, "")
}

// Get retrieves and parses a document snapshot.
func (r *Repository) Get(ctx context.Context, id string) (*core.Document, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rel, ok := r.locate(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	snap, err := r.read(rel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", id, err)
	}
	snap.ID = id

	return core.FromSnapshot(snap)
}

func (r *Repository) read(rel string) (core.Snapshot, error) {
	s, ok := r.serializer(filepath.Ext(rel))
	if !ok {
		return core.Snapshot{}, fmt.Errorf("no serializer for %s", filepath.Ext(rel))
	}

	f, err := os.Open(filepath.Join(r.Path, filepath.FromSlash(rel)))
	if err != nil {
		return core.Snapshot{}, err
	}
	defer f.Close()

	return s.Parse(f)
}

// List scans the directory for all documents.
//
// Strategy:
//  1. Load the summary cache from disk.
//  2. Walk the directory tree (skipping .git and the system dir).
//  3. For each snapshot file, reuse the cached summary when its mtime is unchanged, otherwise parse it.
//  4. Prune vanished entries and save the cache back (unless read-only).
func (r *Repository) List(ctx context.Context) ([]core.Summary, error) {
	if err := r.cache.Load(); err != nil && r.config.Logger != nil {
		r.config.Logger.Warn("summary cache unreadable, rebuilding", "error", err)
	}

	var out []core.Summary
	seen := make(map[string]bool)

	err := r.walk(ctx, func(rel, id string, info os.FileInfo) error {
		seen[rel] = true
		mtime := info.ModTime()

		if entry, hit := r.cache.Get(rel, mtime); hit {
			out = append(out, entry.Summary)
			return nil
		}

		snap, err := r.read(rel)
		if err != nil {
			if r.config.Logger != nil {
				r.config.Logger.Warn("skipping unparseable document", "path", rel, "error", err)
			}
			return nil
		}
		snap.ID = id
		doc, err := core.FromSnapshot(snap)
		if err != nil {
			if r.config.Logger != nil {
				r.config.Logger.Warn("skipping inconsistent document", "path", rel, "error", err)
			}
			return nil
		}

		summary := doc.Summary()
		r.cache.Set(rel, &indexEntry{Summary: summary, LastModified: mtime})
		out = append(out, summary)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.cache.Prune(seen)
	if !r.config.ReadOnly {
		if err := r.cache.Save(); err != nil && r.config.Logger != nil {
			r.config.Logger.Warn("failed to save summary cache", "error", err)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListMatching returns the summaries whose ID matches the doublestar pattern.
func (r *Repository) ListMatching(ctx context.Context, pattern string) ([]core.Summary, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []core.Summary
	for _, s := range all {
		if ok, _ := doublestar.Match(pattern, s.ID); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// walk visits every snapshot file under the root.
func (r *Repository) walk(ctx context.Context, fn func(rel, id string, info os.FileInfo) error) error {
	return filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if path != r.Path && r.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isTempFile(path) {
			return nil
		}

		id, err := r.resolveID(path)
		if err != nil {
			return nil // not a snapshot
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		rel, _ := filepath.Rel(r.Path, path)
		return fn(filepath.ToSlash(rel), id, info)
	})
}

func (r *Repository) skipDir(name string) bool {
	return name == ".git" || name == r.config.SystemDir
}

// Delete removes a document.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := validateID(id); err != nil {
		return err
	}

	rel, ok := r.locate(id)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	r.cache.Delete(rel)

	if r.config.Gitless {
		if err := os.Remove(filepath.Join(r.Path, filepath.FromSlash(rel))); err != nil {
			return fmt.Errorf("failed to remove file: %w", err)
		}
		return nil
	}

	unlock, err := r.git.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := r.git.Rm(rel); err != nil {
		return fmt.Errorf("failed to git rm: %w", err)
	}
	if err := r.git.Commit(changeReason(ctx, "delete "+id)); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

// Watch starts a watcher emitting an event for each document whose ID
// matches the doublestar pattern. The channel is closed once ctx is done.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	events := make(chan core.Event, 16)
	w := newWatchWorker(r, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// Reconcile reports documents modified since the given time. The watcher
// uses it to catch up after git held the index lock.
func (r *Repository) Reconcile(ctx context.Context, since time.Time) ([]core.Event, error) {
	var events []core.Event
	err := r.walk(ctx, func(rel, id string, info os.FileInfo) error {
		if !info.ModTime().Before(since) {
			events = append(events, core.Event{Type: core.EventModify, ID: id, Timestamp: time.Now().Unix()})
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	r.recordReconcile()
	return events, nil
}

// IsGitInstalled checks if git is available in the system path.
func IsGitInstalled() bool {
	return git.IsInstalled()
}
