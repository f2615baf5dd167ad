package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"user_agent": "custom-agent/1.0",
		"timeout_seconds": 10,
		"use_browser": true,
		"max_concurrent": 8
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "custom-agent/1.0", cfg.UserAgent)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 8, cfg.MaxConcurrent)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfigFile(t, `{not valid json`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())

	bad := Config{Port: 70000}
	assert.Error(t, bad.Validate())

	bad = Config{TimeoutSeconds: -1}
	assert.Error(t, bad.Validate())

	bad = Config{MaxConcurrent: -1}
	assert.Error(t, bad.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{UserAgent: "custom-agent/1.0"}
	merged := partial.MergeWithDefaults(Defaults())

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 20, merged.TimeoutSeconds)
	assert.Equal(t, 4, merged.MaxConcurrent)
	assert.Equal(t, "custom-agent/1.0", merged.UserAgent)

	// Set values survive the merge.
	full := Config{Port: 9090, TimeoutSeconds: 5, MaxConcurrent: 2}
	merged = full.MergeWithDefaults(Defaults())
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, 5, merged.TimeoutSeconds)
	assert.Equal(t, 2, merged.MaxConcurrent)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := Config{}
	cfg.ApplyEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)

	// Explicit values are not overwritten from the environment.
	cfg = Config{APIKey: "file-key", DatabaseURL: "postgres://file/db"}
	cfg.ApplyEnv()
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
}
