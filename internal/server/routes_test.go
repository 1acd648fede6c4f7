package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/database"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/middleware"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func perform(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	s := &Server{DB: testDB}
	handler := s.RegisterRoutes()

	req, err := http.NewRequest(method, path, nil)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUnmatchedRouteReturnsEndpointNotFound(t *testing.T) {
	rec := perform(t, http.MethodGet, "/api/companies")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Endpoint not found"}`, rec.Body.String())
}

func TestListRouteIsRegistered(t *testing.T) {
	rec := perform(t, http.MethodGet, "/api/jobs")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEveryResponseCarriesARequestID(t *testing.T) {
	rec := perform(t, http.MethodGet, "/api/jobs")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRegisterRoutes_withoutAllowOriginConfigured(t *testing.T) {
	t.Setenv("ALLOW_ORIGIN", "")

	// cors.New panics on an origin list of [""], so registration itself is
	// the behavior under test.
	rec := perform(t, http.MethodGet, "/api/jobs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterRoutes_allowOriginEnablesCORS(t *testing.T) {
	t.Setenv("ALLOW_ORIGIN", "https://jobs.example.com")

	s := &Server{DB: testDB}
	handler := s.RegisterRoutes()

	req, err := http.NewRequest(http.MethodGet, "/api/jobs", nil)
	assert.NoError(t, err)
	req.Header.Set("Origin", "https://jobs.example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://jobs.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthRoute(t *testing.T) {
	rec := perform(t, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"up"`)
}
