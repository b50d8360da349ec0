package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultMaxUploadBytes caps ledger uploads at 50 MiB.
const DefaultMaxUploadBytes = 50 << 20

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string

	// AppBaseURL is the public origin of the dashboard frontend and is
	// the only origin (besides localhost) echoed in CORS responses.
	AppBaseURL string

	MaxUploadBytes int64

	AIProvider string
	AIAPIKey   string
	AIModel    string
	AIBaseURL  string
}

func Load() Config {
	addr := getenv("KAAPI_ADDR", ":8080")
	dataDir := getenv("KAAPI_DATA_DIR", "data")

	dbPath := os.Getenv("KAAPI_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "kaapi.db")
	}

	staticDir := os.Getenv("KAAPI_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	maxUpload := int64(DefaultMaxUploadBytes)
	if raw := os.Getenv("KAAPI_MAX_UPLOAD_BYTES"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	return Config{
		Addr:           addr,
		DataDir:        dataDir,
		DBPath:         filepath.Clean(dbPath),
		StaticDir:      filepath.Clean(staticDir),
		LogLevel:       getenv("KAAPI_LOG_LEVEL", "info"),
		AppBaseURL:     strings.TrimRight(getenv("KAAPI_APP_BASE_URL", "http://localhost:3000"), "/"),
		MaxUploadBytes: maxUpload,
		AIProvider:     getenv("KAAPI_AI_PROVIDER", "anthropic"),
		AIAPIKey:       os.Getenv("KAAPI_AI_API_KEY"),
		AIModel:        getenv("KAAPI_AI_MODEL", "claude-sonnet-4-5"),
		AIBaseURL:      os.Getenv("KAAPI_AI_BASE_URL"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
