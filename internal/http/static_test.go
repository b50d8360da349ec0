package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	apphttp "kaapi/backend/internal/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRegisterStatic_EmptyDir(t *testing.T) {
	e := echo.New()
	apphttp.RegisterStatic(e, "")
	require.Empty(t, e.Routes())
}

func TestRegisterStatic_MissingIndex(t *testing.T) {
	e := echo.New()
	apphttp.RegisterStatic(e, t.TempDir())
	require.Empty(t, e.Routes())
}

func TestRegisterStatic_ServesFilesWithSPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("INDEX"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("APP"), 0o600))

	e := echo.New()
	apphttp.RegisterStatic(e, dir)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "INDEX")

	rec = get("/app.js")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "APP")

	// client route falls back to the shell
	rec = get("/dashboard/revenue")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "INDEX")

	// unknown API paths never fall back
	rec = get("/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
