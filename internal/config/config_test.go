package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maidadmin/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("MAID_API_URL", "")
	os.Unsetenv("MAID_API_URL")

	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBase())
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.Equal(t, 4*time.Second, cfg.StatusTimeout())
	assert.Equal(t, domain.ResourceUsers, cfg.DefaultResource())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.APIURL = "https://maid.example.com/"
	cfg.UISettings.DefaultResource = "datasets"
	cfg.UISettings.PageSize = 25
	require.NoError(t, svc.Save(cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "version = 1")
	assert.Contains(t, string(content), "api_url")
	assert.Contains(t, string(content), "https://maid.example.com/")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, "https://maid.example.com/api", loaded.APIBase())
	assert.Equal(t, domain.ResourceDatasets, loaded.DefaultResource())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = \"http://10.0.0.2:8080\"\n"), 0o644))

	cfg, err := NewConfigServiceAt(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8080", cfg.APIURL)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "15s", cfg.RequestTimeout)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = \"http://file:1\"\n"), 0o644))

	t.Setenv("MAID_API_URL", "http://env:2")
	t.Setenv("MAID_REQUEST_TIMEOUT", "3s")

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad url":      "api_url = \"not a url\"\n",
		"bad timeout":  "request_timeout = \"soon\"\n",
		"bad resource": "[ui]\ndefault_resource = \"widgets\"\n",
		"bad toml":     "api_url = \n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := NewConfigServiceAt(path).Load()
			require.Error(t, err)
		})
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(Dir(), "prefs.db"), cfg.DatabasePath())

	cfg.DBPath = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath())
}
