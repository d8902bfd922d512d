package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	assert.Equal(t, "release", cfg.Server.RunMode)
	assert.Equal(t, ":42060", cfg.Server.HttpPort)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "storage/database/notes.db", cfg.Database.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "storage/uploads", cfg.LocalFS.SavePath)
	assert.Equal(t, int64(100), cfg.App.UploadMaxSizeMB)
	assert.True(t, cfg.Tracer.Enabled)
}

func TestLoadConfigPartialFileKeepsRestDefault(t *testing.T) {
	path := writeConfig(t, `
server:
  http-port: ":9000"
database:
  path: /tmp/other.db
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.HttpPort)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	// Untouched sections keep their defaults.
	assert.Equal(t, "release", cfg.Server.RunMode)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "storage/uploads", cfg.LocalFS.SavePath)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestUploadMaxBytes(t *testing.T) {
	cfg := &AppConfig{}
	cfg.App.UploadMaxSizeMB = 100
	assert.Equal(t, int64(100*1024*1024), cfg.UploadMaxBytes())
}
