package linkedin

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"casahub/internal/middleware"
	"casahub/internal/pkg/jwt"
)

func newRouter(store *mockStore, notifier *mockNotifier) (*gin.Engine, *jwt.Service) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.New("test-secret", time.Hour)
	handler := NewHandler(NewService(store, notifier, &mockCampaignChecker{}, zap.NewNop()))

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(jwtService))
	RegisterRoutes(v1, handler)
	return r, jwtService
}

func doJSON(r *gin.Engine, token, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_GuestCannotCreatePost(t *testing.T) {
	store := new(mockStore)
	notifier := new(mockNotifier)
	r, jwtService := newRouter(store, notifier)

	token, err := jwtService.GenerateToken("guest-1", "GUEST")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodPost, "/api/v1/linkedin/posts",
		`{"content":"Just listed: a riverside loft."}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoutes_GuestCannotSubmitPost(t *testing.T) {
	store := new(mockStore)
	notifier := new(mockNotifier)
	r, jwtService := newRouter(store, notifier)

	token, err := jwtService.GenerateToken("guest-1", "GUEST")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodPost, "/api/v1/linkedin/posts/p-1/submit", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "PostSubmitted", mock.Anything, mock.Anything)
}

func TestRoutes_EditorCannotUpsertAnalytics(t *testing.T) {
	store := new(mockStore)
	notifier := new(mockNotifier)
	r, jwtService := newRouter(store, notifier)

	token, err := jwtService.GenerateToken("editor-1", "EDITOR")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodPut, "/api/v1/linkedin/posts/p-1/analytics",
		`{"views":100}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "SaveAnalytics", mock.Anything, mock.Anything)
}
