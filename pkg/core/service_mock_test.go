package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/outline/pkg/core"
)

// watchableRepository is a testify mock implementing core.Repository and core.Watchable.
type watchableRepository struct {
	mock.Mock
}

func (m *watchableRepository) Save(ctx context.Context, doc *core.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *watchableRepository) Get(ctx context.Context, id string) (*core.Document, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(*core.Document)
	return doc, args.Error(1)
}

func (m *watchableRepository) List(ctx context.Context) ([]core.Summary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]core.Summary)
	return summaries, args.Error(1)
}

func (m *watchableRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *watchableRepository) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *watchableRepository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	args := m.Called(ctx, pattern)
	ch, _ := args.Get(0).(chan core.Event)
	return ch, args.Error(1)
}

func TestService_CreateDocument_PropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := new(watchableRepository)
	repo.On("Get", mock.Anything, "report").Return(nil, boom)

	_, err := core.NewService(repo, nil).CreateDocument(context.Background(), "report")

	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestService_CreateDocument_RejectsExisting(t *testing.T) {
	repo := new(watchableRepository)
	repo.On("Get", mock.Anything, "report").Return(core.NewDocument("report"), nil)

	_, err := core.NewService(repo, nil).CreateDocument(context.Background(), "report")

	assert.ErrorContains(t, err, "already exists")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_EditDocument_SavesEditedDocument(t *testing.T) {
	repo := new(watchableRepository)
	repo.On("Get", mock.Anything, "report").Return(core.NewDocument("report"), nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(doc *core.Document) bool {
		return doc.Body().Len() == 1
	})).Return(nil).Once()

	doc, err := core.NewService(repo, nil).EditDocument(context.Background(), "report", func(doc *core.Document) error {
		doc.Body().AddParagraph("edited")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "edited", doc.Paragraphs()[0].Text)
	repo.AssertExpectations(t)
}

func TestService_Watch_Delegates(t *testing.T) {
	events := make(chan core.Event)
	repo := new(watchableRepository)
	repo.On("Watch", mock.Anything, "notes/**").Return(events, nil)

	svc := core.NewService(repo, nil)
	got, err := svc.Watch(context.Background(), "notes/**")
	require.NoError(t, err)
	assert.NotNil(t, got)

	state := svc.State().(core.ServiceState)
	assert.True(t, state.Watchable)
	assert.Equal(t, "repository", state.RepositoryType)
	repo.AssertExpectations(t)
}
