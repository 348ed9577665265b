package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "SV", cfg.ID.Prefix)
	assert.Equal(t, 3, cfg.ID.Width)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ":memory:", cfg.Storage.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ID_PREFIX", "HS")
	t.Setenv("ID_WIDTH", "5")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "HS", cfg.ID.Prefix)
	assert.Equal(t, 5, cfg.ID.Width)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "local.yaml", `
env: dev
id:
  prefix: ST
  width: 4
storage:
  driver: sqlite
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "ST", cfg.ID.Prefix)
	assert.Equal(t, 4, cfg.ID.Width)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, ":memory:", cfg.Storage.Path, "unset keys fall back to defaults")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown driver",
			content: "storage:\n  driver: postgres\n",
			wantErr: "field Config.Storage.Driver must be one of [memory sqlite]",
		},
		{
			name:    "width too large",
			content: "id:\n  width: 40\n",
			wantErr: "field Config.ID.Width must be at most 18",
		},
		{
			name:    "negative width",
			content: "id:\n  width: -1\n",
			wantErr: "field Config.ID.Width must be at least 1",
		},
		{
			name:    "unknown env",
			content: "env: qa\n",
			wantErr: "field Config.Env must be one of [dev staging prod]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("values reach Load", func(t *testing.T) {
		// Registered with t.Setenv first so the variable is restored afterwards.
		t.Setenv("ID_PREFIX", "placeholder")
		require.NoError(t, os.Unsetenv("ID_PREFIX"))

		path := writeFile(t, ".env", "ID_PREFIX=DOT\n")
		require.NoError(t, loadDotEnv(path))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "DOT", cfg.ID.Prefix)
	})
}
