package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/models"
)

// State is the fetch lifecycle of the view controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

// CatalogAPI is the slice of the API the view controller needs.
type CatalogAPI interface {
	List(ctx context.Context) ([]models.Video, error)
	Delete(ctx context.Context, id int64) error
}

// Confirmer asks the user to confirm deletion of a video. A nil Confirmer means
// the composing context confirms before calling DeleteVideo.
type Confirmer func(v models.Video) bool

// ViewController keeps a local copy of the catalog synchronized with the store
// through the API. The local list is a derived cache: it is rebuilt wholesale
// after every create and surgically pruned after a delete, never appended to
// locally. RevealSubmissionForm is the only mutation a sibling or parent may
// invoke; everything else is private state.
type ViewController struct {
	api     CatalogAPI
	confirm Confirmer
	logger  *zap.Logger

	mu          sync.Mutex
	state       State
	videos      []models.Video
	formVisible bool
	fetchSeq    uint64 // most recently issued fetch
}

// NewViewController creates a view controller in the Idle state.
func NewViewController(api CatalogAPI, confirm Confirmer, logger *zap.Logger) *ViewController {
	return &ViewController{api: api, confirm: confirm, logger: logger}
}

// Activate performs the initial catalog fetch. Idle -> Loading -> Ready.
func (c *ViewController) Activate(ctx context.Context) {
	c.Refresh(ctx)
}

// Refresh refetches the full catalog and swaps the local list as one snapshot.
// Each call gets a sequence number; when fetches overlap, only the response for
// the most recently issued one is applied, so an older response can never
// overwrite a newer state. A fetch failure logs and lands in Ready with an
// empty list; there is no distinct error state beyond the empty rendering.
func (c *ViewController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.state = StateLoading
	c.mu.Unlock()

	list, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		return // a newer fetch owns the state now
	}
	if err != nil {
		c.logger.Error("fetch videos", zap.Error(err))
		c.videos = nil
		c.state = StateReady
		return
	}
	c.videos = list
	c.state = StateReady
}

// RevealSubmissionForm makes the submission form visible. This is the one
// capability exposed to the composing context.
func (c *ViewController) RevealSubmissionForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formVisible = true
}

// OnSubmissionSuccess hides the form and re-establishes consistency by a full
// refetch rather than splicing the new record in locally; the server assigns
// id, createdAt and published, so the extra round trip buys correctness.
func (c *ViewController) OnSubmissionSuccess(ctx context.Context) {
	c.mu.Lock()
	c.formVisible = false
	c.mu.Unlock()
	c.Refresh(ctx)
}

// DeleteVideo asks for confirmation, calls the delete API, and on success
// removes exactly that record from the local list with no refetch. On failure
// the list is left unchanged; nothing was removed optimistically, so there is
// nothing to roll back.
func (c *ViewController) DeleteVideo(ctx context.Context, id int64) {
	if c.confirm != nil {
		v, ok := c.video(id)
		if !ok || !c.confirm(v) {
			return
		}
	}

	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Error("delete video", zap.Int64("id", id), zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, v := range c.videos {
		if v.ID == id {
			c.videos = append(c.videos[:i], c.videos[i+1:]...)
			break
		}
	}
}

// State returns the current fetch lifecycle state.
func (c *ViewController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Videos returns a copy of the local catalog snapshot.
func (c *ViewController) Videos() []models.Video {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Video, len(c.videos))
	copy(out, c.videos)
	return out
}

// FormVisible reports whether the submission form is shown.
func (c *ViewController) FormVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formVisible
}

func (c *ViewController) video(id int64) (models.Video, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.Video{}, false
}
