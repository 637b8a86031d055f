package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvEndpoint, EnvHomeURL, EnvLexicon, EnvDebounceMs, EnvTimeoutSec, EnvLanguage} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults_MissingFile(t *testing.T) {
	clearEnv(t)

	defaults, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, BuiltinDefaults(), defaults)
}

func TestLoadDefaults_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[lookup]
endpoint = "http://localhost:9000/query"
lexicon = "slater"
debounce_ms = 120
timeout_sec = 5

[browser]
home_url = "http://localhost:9000"

[ui]
language = "pt"
`)

	defaults, err := LoadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/query", defaults.Endpoint)
	assert.Equal(t, LexiconSlater, defaults.Lexicon)
	assert.Equal(t, 120, defaults.DebounceMillis)
	assert.Equal(t, 5, defaults.TimeoutSeconds)
	assert.Equal(t, "http://localhost:9000", defaults.HomeURL)
	assert.Equal(t, "pt", defaults.Language)
}

func TestLoadDefaults_ZeroDebounceInFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebounceMs, "")
	path := writeConfig(t, "[lookup]\ndebounce_ms = 0\n")

	defaults, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, 0, defaults.DebounceMillis)
}

func TestLoadDefaults_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[lookup]\nendpoint = \"http://file/query\"\nlexicon = \"slater\"\n")
	t.Setenv(EnvEndpoint, "http://env/query")
	t.Setenv(EnvTimeoutSec, "3")

	defaults, err := LoadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env/query", defaults.Endpoint)
	assert.Equal(t, LexiconSlater, defaults.Lexicon)
	assert.Equal(t, 3, defaults.TimeoutSeconds)
}

func TestLoadDefaults_Normalizes(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[lookup]\nlexicon = \"klingon\"\ndebounce_ms = 99999\ntimeout_sec = -1\n")

	defaults, err := LoadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultLexicon, defaults.Lexicon)
	assert.Equal(t, MaxDebounceMillis, defaults.DebounceMillis)
	assert.Equal(t, MinTimeoutSeconds, defaults.TimeoutSeconds)
}

func TestLoadDefaults_InvalidURLsFallBack(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[browser]\nhome_url = \"philolog.us\"\n")
	t.Setenv(EnvEndpoint, "ftp://philolog.us/query")

	defaults, err := LoadDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, defaults.Endpoint)
	assert.Equal(t, DefaultHomeURL, defaults.HomeURL)
}

func TestLoadDefaults_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[lookup\nendpoint = ")

	_, err := LoadDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOML")
}

func TestLoadDefaults_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebounceMs, "fast")

	_, err := LoadDefaults("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDebounceMs)
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, ConfigFileName, filepath.Base(path))
}

func TestDefaults_EncodeTOMLRoundTrip(t *testing.T) {
	clearEnv(t)
	defaults := BuiltinDefaults()
	defaults.Lexicon = LexiconLS
	defaults.DebounceMillis = 0
	defaults.TimeoutSeconds = 20

	data, err := defaults.EncodeTOML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[lookup]")

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, defaults, loaded)
}
