package campaign

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

const createBody = `{"name":"Spring Launch","type":"SOCIAL_MEDIA","budget":5000,"startDate":"2026-03-01","endDate":"2026-04-01"}`

func newRouter(store *mockStore) (*gin.Engine, *jwt.Service) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.New("test-secret", time.Hour)
	handler := NewHandler(NewService(store, &mockPropertyChecker{}, zap.NewNop()))

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

func TestRoutes_GuestCannotCreateCampaign(t *testing.T) {
	store := new(mockStore)
	r, jwtService := newRouter(store)

	token, err := jwtService.GenerateToken("guest-1", "GUEST")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodPost, "/api/v1/campaigns", createBody)

	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoutes_EditorCanCreateCampaign(t *testing.T) {
	store := new(mockStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	r, jwtService := newRouter(store)

	token, err := jwtService.GenerateToken("editor-1", "EDITOR")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodPost, "/api/v1/campaigns", createBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertExpectations(t)
}

func TestRoutes_GuestCanListCampaigns(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]Campaign{}, int64(0), nil)
	r, jwtService := newRouter(store)

	token, err := jwtService.GenerateToken("guest-1", "GUEST")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodGet, "/api/v1/campaigns", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_GuestKPIMutationForbidden(t *testing.T) {
	store := new(mockStore)
	r, jwtService := newRouter(store)

	token, err := jwtService.GenerateToken("guest-1", "GUEST")
	assert.NoError(t, err)

	w := doJSON(r, token, http.MethodPost, "/api/v1/campaigns/c-1/kpis",
		`{"metric":"Impressions","target":1000}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	store.AssertNotCalled(t, "CreateKPI", mock.Anything, mock.Anything)
}
