package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/MihaiM21/47Gear-sub000/api/rest/reviews"
	"github.com/MihaiM21/47Gear-sub000/internal/blocklist"
	"github.com/MihaiM21/47Gear-sub000/internal/config"
	"github.com/MihaiM21/47Gear-sub000/internal/patterns"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/MihaiM21/47Gear-sub000/internal/shield"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *reviews.Store) {
	t.Helper()

	limiter := ratelimit.NewLimiter()
	tracker := patterns.NewTracker()
	t.Cleanup(limiter.Close)
	t.Cleanup(tracker.Close)

	cfg := &config.Config{Environment: "production", CDNHost: "cdn.shopify.com", ShieldEnabled: true}
	s := shield.New(cfg, limiter, tracker, blocklist.NewMemoryStore())

	store := reviews.NewStore()

	router := gin.New()
	RegisterRoutes(router.Group("/api"), store, s)

	return router, store
}

func do(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestListReviews_IncludesPending(t *testing.T) {
	router, store := newTestRouter(t)

	store.Add(&reviews.Review{ProductID: "p1", Author: "a", Rating: 4, Content: "pending"})
	approved := store.Add(&reviews.Review{ProductID: "p1", Author: "b", Rating: 5, Content: "live"})
	require.True(t, store.Approve(approved, false))

	w := do(router, "GET", "/api/admin/reviews")

	require.Equal(t, http.StatusOK, w.Code)

	var resp reviews.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestApproveReview(t *testing.T) {
	router, store := newTestRouter(t)

	id := store.Add(&reviews.Review{ProductID: "p1", Author: "a", Rating: 5, Content: "great"})

	w := do(router, "POST", "/api/admin/reviews/"+id+"/approve?featured=true")

	require.Equal(t, http.StatusOK, w.Code)

	featured := store.Featured()
	require.Len(t, featured, 1)
	assert.Equal(t, id, featured[0].ID)
}

func TestApproveReview_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "POST", "/api/admin/reviews/missing/approve")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReview(t *testing.T) {
	router, store := newTestRouter(t)

	id := store.Add(&reviews.Review{ProductID: "p1", Author: "a", Rating: 1, Content: "spam"})

	require.Equal(t, http.StatusOK, do(router, "DELETE", "/api/admin/reviews/"+id).Code)
	assert.Empty(t, store.List())

	assert.Equal(t, http.StatusNotFound, do(router, "DELETE", "/api/admin/reviews/"+id).Code)
}

func TestAbuseStats(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "GET", "/api/admin/abuse/stats")

	require.Equal(t, http.StatusOK, w.Code)

	var stats shield.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TrackedClients)
	assert.Equal(t, 0, stats.BlockedClients)
}
