package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/outline/pkg/core"
)

func waitEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed early")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return core.Event{}
}

func TestWatch_ReportsSavedDocument(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)

	// Wait for watcher to be ready
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, repo.Save(context.Background(), sampleDocument("minutes")))

	event := waitEvent(t, events)
	assert.Equal(t, "minutes", event.ID)
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, event.Type)
}

func TestWatch_FiltersByPattern(t *testing.T) {
	repo, path := setupRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Join(path, "notes"), 0755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "notes/**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, repo.Save(context.Background(), core.NewDocument("elsewhere")))
	require.NoError(t, repo.Save(context.Background(), core.NewDocument("notes/today")))

	event := waitEvent(t, events)
	assert.Equal(t, "notes/today", event.ID)
}

func TestWatch_ReportsDelete(t *testing.T) {
	repo, _ := setupRepo(t)
	require.NoError(t, repo.Save(context.Background(), core.NewDocument("doomed")))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, repo.Delete(context.Background(), "doomed"))

	event := waitEvent(t, events)
	assert.Equal(t, core.EventDelete, event.Type)
	assert.Equal(t, "doomed", event.ID)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := repo.Watch(ctx, "**")
	require.NoError(t, err)

	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Watch(context.Background(), "[")
	assert.Error(t, err)
}
