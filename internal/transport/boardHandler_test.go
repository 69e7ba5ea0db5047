package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds124wfegd/digit-canvas/internal/canvas"
	"github.com/ds124wfegd/digit-canvas/internal/database"
	"github.com/ds124wfegd/digit-canvas/internal/entity"
	"github.com/ds124wfegd/digit-canvas/internal/service"
)

type stubUploader struct {
	configured bool

	mu      sync.Mutex
	uploads int
}

func (s *stubUploader) IsConfigured() bool                   { return s.configured }
func (s *stubUploader) EnsureBucket(_ context.Context) error { return nil }

func (s *stubUploader) Upload(_ context.Context, _ int, _ []byte) error {
	s.mu.Lock()
	s.uploads++
	s.mu.Unlock()
	return nil
}

func setupRouter(t *testing.T, up *stubUploader) (*gin.Engine, service.BoardService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := database.NewBoardRepository(canvas.Options{})
	svc := service.NewBoardService(repo, up, canvas.DefaultOutputSize)
	return InitRoutes(NewBoardHandler(svc), t.TempDir()), svc
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "test-session"})
	return req
}

func TestApplyStrokeEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubUploader{configured: true})

	body, _ := json.Marshal(entity.StrokeRequest{
		Points: []entity.Point{{X: 40, Y: 140}, {X: 240, Y: 140}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/slots/5/strokes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, withSession(req))

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestApplyStrokeBadRequests тестирует отказы валидации
func TestApplyStrokeBadRequests(t *testing.T) {
	router, _ := setupRouter(t, &stubUploader{configured: true})

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "digit out of range", path: "/api/slots/12/strokes", body: `{"points":[{"x":1,"y":1}]}`},
		{name: "digit not a number", path: "/api/slots/x/strokes", body: `{"points":[{"x":1,"y":1}]}`},
		{name: "empty stroke", path: "/api/slots/4/strokes", body: `{"points":[]}`},
		{name: "malformed json", path: "/api/slots/4/strokes", body: `{"points":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, withSession(req))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitNotConfigured(t *testing.T) {
	router, _ := setupRouter(t, &stubUploader{configured: false})

	req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, withSession(req))

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not configured")
}

func TestSubmitReturnsAllOutcomes(t *testing.T) {
	up := &stubUploader{configured: true}
	router, svc := setupRouter(t, up)

	require.NoError(t, svc.ApplyStroke("test-session", 7, []entity.Point{
		{X: 40, Y: 40}, {X: 240, Y: 240},
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, withSession(req))

	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Outcomes, canvas.SlotCount)

	for digit, o := range resp.Outcomes {
		assert.Equal(t, digit, o.Digit)
	}
	assert.False(t, resp.Outcomes[7].Skipped)
	assert.True(t, resp.Outcomes[7].Success)
	assert.Equal(t, 1, up.uploads)
}

func TestPreviewEndpoint(t *testing.T) {
	router, svc := setupRouter(t, &stubUploader{configured: true})

	req := httptest.NewRequest(http.MethodGet, "/api/slots/0/preview", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(req))
	assert.Equal(t, http.StatusNoContent, w.Code)

	require.NoError(t, svc.ApplyStroke("test-session", 0, []entity.Point{
		{X: 40, Y: 40}, {X: 240, Y: 240},
	}))

	req = httptest.NewRequest(http.MethodGet, "/api/slots/0/preview", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(req))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestClearBoardEndpoint(t *testing.T) {
	up := &stubUploader{configured: true}
	router, svc := setupRouter(t, up)

	require.NoError(t, svc.ApplyStroke("test-session", 1, []entity.Point{
		{X: 40, Y: 40}, {X: 240, Y: 240},
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/clear", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(req))
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/submit", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(req))

	var resp entity.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, o := range resp.Outcomes {
		assert.True(t, o.Skipped)
	}
	assert.Equal(t, 0, up.uploads)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &stubUploader{configured: true})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["configured"])
}
