package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/outline/pkg/core"
)

func TestCache_Load(t *testing.T) {
	t.Run("Starts Empty if File Missing", func(t *testing.T) {
		c := newCache(t.TempDir(), ".cache")

		require.NoError(t, c.Load())
		assert.Zero(t, c.Len())
	})

	t.Run("Self-Heals Corrupted File", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".cache"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".cache", "index.json"), []byte("{not json"), 0644))

		c := newCache(tmpDir, ".cache")
		require.NoError(t, c.Load())
		assert.Zero(t, c.Len())
	})

	t.Run("Drops Outdated Version", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".cache"), 0755))
		old := `{"version": 1, "entries": {"a.md": {"id": "a"}}}`
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".cache", "index.json"), []byte(old), 0644))

		c := newCache(tmpDir, ".cache")
		require.NoError(t, c.Load())
		assert.Zero(t, c.Len())
	})
}

func TestCache_SaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	mtime := time.Now().Truncate(time.Millisecond)

	c := newCache(tmpDir, ".cache")
	c.Set("a.yaml", &indexEntry{Summary: core.Summary{ID: "a", Paragraphs: 2, Items: 1, NumIDs: []int{1}}, LastModified: mtime})
	require.NoError(t, c.Save())

	reloaded := newCache(tmpDir, ".cache")
	require.NoError(t, reloaded.Load())

	entry, hit := reloaded.Get("a.yaml", mtime)
	require.True(t, hit)
	assert.Equal(t, 2, entry.Summary.Paragraphs)

	_, hit = reloaded.Get("a.yaml", mtime.Add(time.Second))
	assert.False(t, hit, "stale mtime is a miss")
}

func TestCache_PruneAndDelete(t *testing.T) {
	c := newCache(t.TempDir(), ".cache")
	now := time.Now()
	c.Set("a.yaml", &indexEntry{LastModified: now})
	c.Set("b.yaml", &indexEntry{LastModified: now})
	c.Set("c.yaml", &indexEntry{LastModified: now})

	c.Prune(map[string]bool{"a.yaml": true, "b.yaml": true})
	assert.Equal(t, 2, c.Len())

	c.Delete("a.yaml")
	_, hit := c.Get("a.yaml", now)
	assert.False(t, hit)
	assert.Equal(t, 1, c.Len())
}
