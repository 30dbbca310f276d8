package client

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/models"
)

// Validation errors mirror the API's required-field checks. They are advisory:
// the authoritative check is always the server's; these only avoid a needless
// round trip.
var (
	ErrTitleRequired     = errors.New("title is required")
	ErrURLRequired       = errors.New("url is required")
	ErrThumbnailRequired = errors.New("thumbnailUrl is required")
)

// CreateAPI is the slice of the API the form controller needs.
type CreateAPI interface {
	Create(ctx context.Context, fields CreateFields) (*models.Video, error)
}

// FormController collects and submits one new video's fields. A busy flag
// prevents a second submission while one is outstanding; it is cleared on both
// success and failure, so the form is never left permanently disabled.
type FormController struct {
	api       CreateAPI
	onSuccess func()
	logger    *zap.Logger

	mu     sync.Mutex
	fields CreateFields
	busy   bool
}

// NewFormController creates a form controller with all fields empty. onSuccess
// is invoked after a successful submission, once the fields are cleared.
func NewFormController(api CreateAPI, onSuccess func(), logger *zap.Logger) *FormController {
	return &FormController{api: api, onSuccess: onSuccess, logger: logger}
}

// SetFields replaces the current field bag.
func (f *FormController) SetFields(fields CreateFields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Fields returns the current field bag.
func (f *FormController) Fields() CreateFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Busy reports whether a submission is outstanding.
func (f *FormController) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Validate checks the required fields in the same order as the server and
// reports only the first failure.
func (f *FormController) Validate() error {
	fields := f.Fields()
	if fields.Title == "" {
		return ErrTitleRequired
	}
	if fields.URL == "" {
		return ErrURLRequired
	}
	if fields.ThumbnailURL == "" {
		return ErrThumbnailRequired
	}
	return nil
}

// Submit sends the current fields to the create API. On success the fields are
// cleared and the success callback fires; on failure the entered fields stay
// intact so the user can retry. A submission already in flight makes Submit a
// no-op.
func (f *FormController) Submit(ctx context.Context) error {
	if err := f.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil
	}
	f.busy = true
	fields := f.fields
	f.mu.Unlock()

	_, err := f.api.Create(ctx, fields)

	f.mu.Lock()
	f.busy = false
	if err == nil {
		f.fields = CreateFields{}
	}
	f.mu.Unlock()

	if err != nil {
		f.logger.Error("submit video", zap.Error(err))
		return err
	}
	if f.onSuccess != nil {
		f.onSuccess()
	}
	return nil
}
