// Package lifecycle exposes document change events as lifecycle sources.
package lifecycle

import (
	"context"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/outline/pkg/core"
)

// eventSource forwards document events, optionally restricted to a set of types.
type eventSource struct {
	events <-chan core.Event
	types  []core.EventType
	out    chan lifecycle.Event
}

// Option configures a source.
type Option func(*eventSource)

// WithTypes forwards only events of the given types.
func WithTypes(types ...core.EventType) Option {
	return func(s *eventSource) {
		s.types = append(s.types, types...)
	}
}

// NewSource creates a lifecycle.Source fed by a repository watch channel.
// The source output closes when the input closes or the start context ends.
func NewSource(events <-chan core.Event, opts ...Option) lifecycle.Source {
	s := &eventSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *eventSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *eventSource) accepts(e core.Event) bool {
	return len(s.types) == 0 || slices.Contains(s.types, e.Type)
}

func (s *eventSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if !s.accepts(e) {
					continue
				}
				// core.Event satisfies lifecycle.Event through String.
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
