package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the test and restores it afterwards.
// An empty-but-set variable still counts as set for cleanenv, so the tests
// need a real unset.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	unsetEnv(t, "CONFIG_PATH")
	t.Setenv("VOCAB_PATH", "/data/vocab.json")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/data/vocab.json", cfg.VocabPath)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 3600, cfg.CacheTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	unsetEnv(t, "CONFIG_PATH")
	unsetEnv(t, "VOCAB_PATH")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("host: 127.0.0.1\nport: 8888\nvocab_path: /srv/vocab.json\ncache_ttl: 60\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_PATH", path)
	unsetEnv(t, "VOCAB_PATH")
	unsetEnv(t, "SERVER_PORT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8888, cfg.Port)
	assert.Equal(t, "/srv/vocab.json", cfg.VocabPath)
	assert.Equal(t, 60, cfg.CacheTTL)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("port: 8888\nvocab_path: /srv/vocab.json\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_PATH", path)
	unsetEnv(t, "VOCAB_PATH")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "/srv/vocab.json", cfg.VocabPath)
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
}
