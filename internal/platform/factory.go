package platform

import (
	"github.com/aretw0/outline/pkg/core"
)

// New initializes the store at uri and returns a Service over it.
//
//	svc, err := outline.New("./docs", outline.WithVersioning(false))
func New(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}
