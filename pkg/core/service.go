package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service handles the business logic for documents.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateDocument stores a new empty document and returns it.
// It fails if a document with the same ID already exists.
func (s *Service) CreateDocument(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	if _, err := s.repo.Get(ctx, id); err == nil {
		return nil, fmt.Errorf("document %q already exists", id)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	doc := NewDocument(id)
	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("document created", "id", id)
	}
	return doc, nil
}

// SaveDocument persists doc.
func (s *Service) SaveDocument(ctx context.Context, doc *Document) error {
	if doc == nil || doc.ID == "" {
		return ErrEmptyID
	}
	return s.repo.Save(ctx, doc)
}

// GetDocument retrieves a document.
func (s *Service) GetDocument(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.repo.Get(ctx, id)
}

// ListDocuments retrieves a summary of all documents.
func (s *Service) ListDocuments(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// DeleteDocument removes a document.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return s.repo.Delete(ctx, id)
}

// EditDocument loads the document id, hands it to fn and saves it when fn
// succeeds. Nothing is written if fn returns an error.
func (s *Service) EditDocument(ctx context.Context, id string, fn func(doc *Document) error) (*Document, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(doc); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", id, err)
	}

	if s.logger != nil {
		s.logger.Debug("document edited", "id", id, "paragraphs", doc.Body().Len())
	}
	return doc, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Repository returns the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}
