package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"visitcap/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VISITCAP_CONFIG", "VISITCAP_ADDR", "VISITCAP_DATA_DIR", "VISITCAP_DB_PATH",
		"VISITCAP_LOG_LEVEL", "VISITCAP_STATIC_DIR", "VISITCAP_BLOCKED_URL", "VISITCAP_STORE",
		"VISITCAP_REDIS_URL", "VISITCAP_API_RATE", "VISITCAP_SWAGGER", "VISITCAP_TAB_TTL", "VISITCAP_NODE_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8080", cfg.Addr, "loopback only by default")
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, filepath.Join("data", "visitcap.db"), cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, config.StoreSQLite, cfg.Store)
	require.Equal(t, "http://127.0.0.1:8080/blocked", cfg.BlockedPageURL)
	require.Equal(t, float64(20), cfg.APIRate)
	require.True(t, cfg.Swagger)
	require.Zero(t, cfg.TabTTL)
}

func TestLoad_WildcardAddrStillPointsAtLoopback(t *testing.T) {
	clearEnv(t)
	t.Setenv("VISITCAP_ADDR", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9090/blocked", cfg.BlockedPageURL)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("VISITCAP_ADDR", "localhost:9999")
	t.Setenv("VISITCAP_DATA_DIR", "/tmp/visitcap")
	t.Setenv("VISITCAP_LOG_LEVEL", "debug")
	t.Setenv("VISITCAP_STORE", "Redis")
	t.Setenv("VISITCAP_TAB_TTL", "2h")
	t.Setenv("VISITCAP_API_RATE", "0")
	t.Setenv("VISITCAP_SWAGGER", "false")
	t.Setenv("VISITCAP_NODE_ID", "3")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "localhost:9999", cfg.Addr)
	require.Equal(t, filepath.Join("/tmp/visitcap", "visitcap.db"), cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.StoreRedis, cfg.Store)
	require.Equal(t, 2*time.Hour, cfg.TabTTL)
	require.Zero(t, cfg.APIRate)
	require.False(t, cfg.Swagger)
	require.Equal(t, int64(3), cfg.NodeID)
	require.Equal(t, "http://localhost:9999/blocked", cfg.BlockedPageURL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "visitcap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":7000"
db_path: /var/lib/visitcap/limits.db
log_level: warn
tab_ttl: 45m
blocked_url: http://blocked.local/page
`), 0o600))
	t.Setenv("VISITCAP_CONFIG", path)
	t.Setenv("VISITCAP_LOG_LEVEL", "error")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Addr)
	require.Equal(t, "/var/lib/visitcap/limits.db", cfg.DBPath)
	require.Equal(t, "error", cfg.LogLevel, "environment wins over the file")
	require.Equal(t, 45*time.Minute, cfg.TabTTL)
	require.Equal(t, "http://blocked.local/page", cfg.BlockedPageURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad rate", env: map[string]string{"VISITCAP_API_RATE": "fast"}},
		{name: "bad swagger", env: map[string]string{"VISITCAP_SWAGGER": "maybe"}},
		{name: "bad ttl", env: map[string]string{"VISITCAP_TAB_TTL": "forever"}},
		{name: "bad node", env: map[string]string{"VISITCAP_NODE_ID": "2048"}},
		{name: "bad store", env: map[string]string{"VISITCAP_STORE": "mongo"}},
		{name: "missing file", env: map[string]string{"VISITCAP_CONFIG": "/nonexistent/visitcap.yaml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
