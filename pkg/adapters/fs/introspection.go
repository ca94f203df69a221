package fs

import (
	"sort"
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path" yaml:"path"`
	SystemDir     string     `json:"system_dir" yaml:"system_dir"`
	Extension     string     `json:"extension" yaml:"extension"`
	CacheSize     int        `json:"cache_size" yaml:"cache_size"`
	Gitless       bool       `json:"gitless" yaml:"gitless"`
	ReadOnly      bool       `json:"read_only" yaml:"read_only"`
	Strict        bool       `json:"strict" yaml:"strict"`
	Serializers   []string   `json:"serializers" yaml:"serializers"`
	WatcherActive bool       `json:"watcher_active" yaml:"watcher_active"`
	LastReconcile *time.Time `json:"last_reconcile,omitempty" yaml:"last_reconcile,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serializers := make([]string, 0, len(r.serializers))
	for ext := range r.serializers {
		serializers = append(serializers, ext)
	}
	sort.Strings(serializers)

	return RepositoryState{
		Path:          r.Path,
		SystemDir:     r.config.SystemDir,
		Extension:     r.config.Extension,
		CacheSize:     r.cache.Len(),
		Gitless:       r.config.Gitless,
		ReadOnly:      r.config.ReadOnly,
		Strict:        r.config.Strict,
		Serializers:   serializers,
		WatcherActive: r.watcherActive,
		LastReconcile: r.lastReconcile,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordReconcile() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastReconcile = &now
}
