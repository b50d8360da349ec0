package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	apphttp "kaapi/backend/internal/http"
	"kaapi/backend/internal/ratelimit"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, "unknown", apphttp.ClientID(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	require.Equal(t, "10.0.0.2", apphttp.ClientID(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", apphttp.ClientID(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := ratelimit.New(ratelimit.WithPolicies(map[ratelimit.Class]ratelimit.Policy{
		ratelimit.ClassUpload: {MaxRequests: 2, Window: time.Minute},
	}))

	e := echo.New()
	mw := apphttp.RateLimitMiddleware(limiter)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
		req.Header.Set("X-Real-IP", "10.0.0.9")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, mw(okHandler)(c))
		return rec
	}

	rec := do()
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do()
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Contains(t, rec.Body.String(), "Too many requests")
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	e := echo.New()
	e.Use(apphttp.CORSMiddleware([]string{"http://localhost:3000"}))
	e.POST("/api/upload", okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/upload", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	e := echo.New()
	e.Use(apphttp.CORSMiddleware([]string{"http://localhost:3000"}))
	e.GET("/api/revenue", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/revenue", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
