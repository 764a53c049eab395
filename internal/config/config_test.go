package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"input": "resume.txt",
		"output": "resume.json",
		"enrich": true,
		"search_api_key": "test-key",
		"search_cx": "test-cx",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.txt", cfg.Input)
	assert.Equal(t, "resume.json", cfg.Output)
	assert.True(t, cfg.Enrich)
	assert.Equal(t, "test-key", cfg.SearchAPIKey)
	assert.Equal(t, "test-cx", cfg.SearchCX)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "env-key")
	t.Setenv("SEARCH_CX", "env-cx")

	cfg := &Config{}
	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.SearchAPIKey)
	assert.Equal(t, "env-cx", cfg.SearchCX)
}

func TestApplyEnv_ConfigWins(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "env-key")
	t.Setenv("SEARCH_CX", "env-cx")

	cfg := &Config{SearchAPIKey: "file-key", SearchCX: "file-cx"}
	cfg.ApplyEnv()

	assert.Equal(t, "file-key", cfg.SearchAPIKey)
	assert.Equal(t, "file-cx", cfg.SearchCX)
}

func TestValidate_InputNotFound(t *testing.T) {
	cfg := &Config{
		Input: "/nonexistent/resume.txt",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_PartialSearchCredentials(t *testing.T) {
	cfg := &Config{SearchAPIKey: "key-without-cx"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be set together")
}

func TestValidate_ValidConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("John Doe"), 0644))

	cfg := &Config{
		Input:        tmpFile,
		SearchAPIKey: "key",
		SearchCX:     "cx",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Input:        "default.txt",
		Output:       "default.json",
		SearchAPIKey: "default-key",
	}

	partial := Config{
		Input: "custom.txt",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom.txt", merged.Input)

	// Default values should fill in empty fields
	assert.Equal(t, "default.json", merged.Output)
	assert.Equal(t, "default-key", merged.SearchAPIKey)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Input:  "resume.txt",
		Output: "resume.json",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "resume.txt", merged.Input)
	assert.Equal(t, "resume.json", merged.Output)
}
