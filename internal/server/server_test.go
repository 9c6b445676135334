package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carhub/config"
	"carhub/internal/handler"
	"carhub/internal/services"

	"github.com/stretchr/testify/assert"
)

func setupTestServer() *Server {
	cfg := &config.Config{
		AppPort:    "0",
		AppMode:    TestMode,
		CORSOrigin: "http://localhost:3000",
		JWTSecret:  "test-secret",
	}
	srv := New(cfg, nil, nil)

	authService := services.NewAuthService(nil, cfg)
	handlers := &Handlers{
		Auth: handler.NewAuthHandler(authService),
		Car:  handler.NewCarHandler(services.NewCarService(nil, nil, nil)),
	}
	srv.SetupRoutes(handlers, authService)
	return srv
}

func TestUnmatchedRoute(t *testing.T) {
	srv := setupTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, w.Body.String())
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	srv := setupTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/cars", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCarRoutesRequireAuth(t *testing.T) {
	srv := setupTestServer()

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/cars"},
		{http.MethodGet, "/api/cars"},
		{http.MethodGet, "/api/cars/search"},
		{http.MethodGet, "/api/cars/some-id"},
		{http.MethodPut, "/api/cars/some-id"},
		{http.MethodDelete, "/api/cars/some-id"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		srv.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		assert.Contains(t, w.Body.String(), "No token, authorization denied")
	}
}
