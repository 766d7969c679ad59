package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"url": "https://www.grants.gov/search-results-detail/358702",
		"out_dir": "./archive",
		"timeout_seconds": 60,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://www.grants.gov/search-results-detail/358702", cfg.URL)
	assert.Equal(t, "./archive", cfg.OutDir)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
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

func TestValidate_FileWithoutURL(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "page.html")
	err := os.WriteFile(tmpFile, []byte("<html></html>"), 0644)
	require.NoError(t, err)

	cfg := &Config{
		File: tmpFile,
	}

	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires 'url'")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{
		TimeoutSeconds: -5,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{
		URL:  "https://www.grants.gov/search-results-detail/358702",
		File: filepath.Join(t.TempDir(), "missing.html"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		URL:            "https://www.grants.gov/search-results-detail/358702",
		OutDir:         "./out",
		TimeoutSeconds: 30,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		OutDir:         "./out",
		DatabaseURL:    "postgres://localhost/foa",
		TimeoutSeconds: 30,
	}

	partial := Config{
		URL:    "https://www.nsf.gov/funding/opportunities/climate",
		OutDir: "./custom",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "https://www.nsf.gov/funding/opportunities/climate", merged.URL)
	assert.Equal(t, "./custom", merged.OutDir)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/foa", merged.DatabaseURL)
	assert.Equal(t, 30, merged.TimeoutSeconds)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		URL:    "https://www.grants.gov/search-results-detail/358702",
		OutDir: "./out",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "https://www.grants.gov/search-results-detail/358702", merged.URL)
	assert.Equal(t, "./out", merged.OutDir)
}
