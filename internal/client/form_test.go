package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/models"
)

type fakeCreateAPI struct {
	mu      sync.Mutex
	calls   int
	err     error
	entered chan struct{} // closed when the first call starts, if set
	release chan struct{} // blocks the call until closed, if set
}

func (f *fakeCreateAPI) Create(ctx context.Context, fields CreateFields) (*models.Video, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	f.mu.Unlock()

	if first && f.entered != nil {
		close(f.entered)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.Video{ID: 1, Title: fields.Title, Published: true}, nil
}

func (f *fakeCreateAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestValidateReportsFirstFailureOnly(t *testing.T) {
	form := NewFormController(&fakeCreateAPI{}, nil, zap.NewNop())

	form.SetFields(CreateFields{})
	assert.ErrorIs(t, form.Validate(), ErrTitleRequired)

	form.SetFields(CreateFields{Title: "a"})
	assert.ErrorIs(t, form.Validate(), ErrURLRequired)

	form.SetFields(CreateFields{Title: "a", URL: "https://v/1"})
	assert.ErrorIs(t, form.Validate(), ErrThumbnailRequired)

	form.SetFields(CreateFields{Title: "a", URL: "https://v/1", ThumbnailURL: "https://t/1"})
	assert.NoError(t, form.Validate())
}

func TestSubmitValidationFailureSkipsAPI(t *testing.T) {
	api := &fakeCreateAPI{}
	form := NewFormController(api, nil, zap.NewNop())

	form.SetFields(CreateFields{URL: "https://v/1", ThumbnailURL: "https://t/1"})
	err := form.Submit(context.Background())

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, 0, api.callCount())
	assert.False(t, form.Busy())
}

func TestSubmitSuccessClearsFieldsAndNotifies(t *testing.T) {
	api := &fakeCreateAPI{}
	notified := 0
	form := NewFormController(api, func() { notified++ }, zap.NewNop())

	form.SetFields(CreateFields{Title: "a", URL: "https://v/1", ThumbnailURL: "https://t/1"})
	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, 1, notified)
	assert.Equal(t, CreateFields{}, form.Fields())
	assert.False(t, form.Busy())
}

func TestSubmitFailureKeepsFieldsForRetry(t *testing.T) {
	api := &fakeCreateAPI{err: errors.New("network down")}
	notified := 0
	form := NewFormController(api, func() { notified++ }, zap.NewNop())

	fields := CreateFields{Title: "a", URL: "https://v/1", ThumbnailURL: "https://t/1"}
	form.SetFields(fields)
	err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, notified)
	assert.Equal(t, fields, form.Fields(), "entered fields stay intact for retry")
	assert.False(t, form.Busy(), "busy flag must clear on failure")
}

func TestSubmitWhileBusyIsNoOp(t *testing.T) {
	api := &fakeCreateAPI{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	form := NewFormController(api, nil, zap.NewNop())
	form.SetFields(CreateFields{Title: "a", URL: "https://v/1", ThumbnailURL: "https://t/1"})

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()
	<-api.entered

	assert.True(t, form.Busy())
	require.NoError(t, form.Submit(context.Background()), "second submit while busy is a no-op")
	assert.Equal(t, 1, api.callCount())

	close(api.release)
	require.NoError(t, <-done)
	assert.False(t, form.Busy())
}
