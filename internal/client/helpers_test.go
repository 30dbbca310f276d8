package client

import (
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/videos"
)

// requestCounts tracks how many catalog API calls the server received, so tests
// can assert e.g. "no refetch happened after a local delete".
type requestCounts struct {
	list   atomic.Int32
	create atomic.Int32
	delete atomic.Int32
}

// newCatalogServer runs the real catalog handlers over an in-memory store.
func newCatalogServer(t *testing.T) (*httptest.Server, *videos.MemoryStore, *requestCounts) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := videos.NewMemoryStore()
	h := videos.NewHandler(store, zap.NewNop())
	counts := &requestCounts{}

	r := gin.New()
	r.GET("/api/videos", func(c *gin.Context) {
		counts.list.Add(1)
		h.List(c)
	})
	r.POST("/api/videos", func(c *gin.Context) {
		counts.create.Add(1)
		h.Create(c)
	})
	r.DELETE("/api/videos", func(c *gin.Context) {
		counts.delete.Add(1)
		h.Delete(c)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store, counts
}
