package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/outline/pkg/adapters/lifecycle"
	"github.com/aretw0/outline/pkg/core"
)

func TestSource_ForwardsUntilInputCloses(t *testing.T) {
	in := make(chan core.Event, 2)
	in <- core.Event{Type: core.EventCreate, ID: "a"}
	in <- core.Event{Type: core.EventModify, ID: "b"}
	close(in)

	src := lifecycle.NewSource(in)
	require.NoError(t, src.Start(context.Background()))

	var got []string
	for e := range src.Events() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"CREATE a", "MODIFY b"}, got)
}

func TestSource_FiltersTypes(t *testing.T) {
	in := make(chan core.Event, 3)
	in <- core.Event{Type: core.EventCreate, ID: "a"}
	in <- core.Event{Type: core.EventDelete, ID: "b"}
	in <- core.Event{Type: core.EventModify, ID: "c"}
	close(in)

	src := lifecycle.NewSource(in, lifecycle.WithTypes(core.EventDelete))
	require.NoError(t, src.Start(context.Background()))

	var ids []string
	for e := range src.Events() {
		ids = append(ids, e.(core.Event).ID)
	}
	assert.Equal(t, []string{"b"}, ids)
}

func TestSource_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := lifecycle.NewSource(make(chan core.Event))
	require.NoError(t, src.Start(ctx))

	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not close after cancel")
	}
}
