package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `input: data/customers.txt

endpoint:
  scheme: https
  host: api.internal
  port: 8443
  path: /sdrdemo/rest/customer

timeout: 30s
retries: 2
message: "Loaded."
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/customers.txt", cfg.Input)
	assert.Equal(t, "https", cfg.Endpoint.Scheme)
	assert.Equal(t, "api.internal", cfg.Endpoint.Host)
	assert.Equal(t, 8443, cfg.Endpoint.Port)
	assert.Equal(t, "/sdrdemo/rest/customer", cfg.Endpoint.Path)
	assert.Equal(t, "30s", cfg.Timeout)
	assert.Equal(t, 2, cfg.Retries)
	assert.Equal(t, "Loaded.", cfg.Message)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `endpoint:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Endpoint.Host)
	assert.Equal(t, 9090, cfg.Endpoint.Port)
	assert.Zero(t, cfg.Retries)
	assert.Empty(t, cfg.Message)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(""), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint:\n  host: staging\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Endpoint.Host)
}
