package reviews

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/MihaiM21/47Gear-sub000/internal/botcheck"
	"github.com/MihaiM21/47Gear-sub000/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "reviews-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()

	limiter := ratelimit.NewLimiter()
	t.Cleanup(limiter.Close)

	store := NewStore()

	router := gin.New()
	RegisterRoutes(router.Group("/api"), store, botcheck.NewTimingTokenManager(testSecret), limiter)

	return router, store
}

func formToken(t *testing.T, issuedAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(issuedAt)}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func submit(router *gin.Engine, ip string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)

	r := httptest.NewRequest("POST", "/api/reviews", bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Forwarded-For", ip)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func validRequest(t *testing.T) SubmitRequest {
	return SubmitRequest{
		ProductID: "carbon-spoiler",
		Author:    "Dana Popescu",
		Email:     "dana@realcompany.com",
		Rating:    5,
		Content:   "Fit the 2019 hatchback perfectly, installation took about twenty minutes.",
		FormToken: formToken(t, time.Now().Add(-30*time.Second)),
	}
}

func TestSubmit_PendingModeration(t *testing.T) {
	router, store := newTestRouter(t)

	w := submit(router, "203.0.113.7", validRequest(t))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending_review", resp["status"])
	assert.NotEmpty(t, resp["id"])

	all := store.List()
	require.Len(t, all, 1)
	assert.Equal(t, resp["id"], all[0].ID)
	assert.False(t, all[0].Approved)
}

func TestSubmit_RatingOutOfRange(t *testing.T) {
	router, _ := newTestRouter(t)

	req := validRequest(t)
	req.Rating = 6

	w := submit(router, "203.0.113.7", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rating must be between 1 and 5")
}

func TestSubmit_HoneypotRejected(t *testing.T) {
	router, store := newTestRouter(t)

	req := validRequest(t)
	req.Website = "https://filled-by-a-script.example"

	w := submit(router, "203.0.113.7", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.List())
}

func TestSubmit_BurstLimited(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < ratelimit.ReviewSubmission.BurstLimit; i++ {
		w := submit(router, "203.0.113.7", validRequest(t))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := submit(router, "203.0.113.7", validRequest(t))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestFeatured_OnlyApprovedFeatured(t *testing.T) {
	router, store := newTestRouter(t)

	store.Add(&Review{ProductID: "p1", Author: "a", Rating: 4, Content: "pending"})
	id := store.Add(&Review{ProductID: "p1", Author: "b", Rating: 5, Content: "front page"})
	require.True(t, store.Approve(id, true))

	r := httptest.NewRequest("GET", "/api/reviews/featured", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, id, resp.Reviews[0].ID)

	// submitter email never leaves the server
	assert.NotContains(t, w.Body.String(), "@")
}
