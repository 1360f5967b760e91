package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DefaultBaseURL, c.APIBaseURL)
	assert.Equal(t, DefaultQuantity, c.Quantity)
	assert.Equal(t, time.Duration(0), c.Timeout)
	assert.Equal(t, "classic", c.Theme)
	assert.False(t, c.NoColor)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url": "http://localhost:3000",
		"quantity":     5,
		"timeout":      "5s",
	})
	t.Setenv("TRIPTYCH_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.Quantity)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	// Untouched fields keep their defaults.
	assert.Equal(t, "classic", cfg.Theme)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"quantity": 5})
	t.Setenv("TRIPTYCH_CONFIG", path)
	t.Setenv("TRIPTYCH_QUANTITY", "7")
	t.Setenv("TRIPTYCH_THEME", "mono")
	t.Setenv("TRIPTYCH_NO_COLOR", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Quantity)
	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.NoColor)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("TRIPTYCH_CONFIG", filepath.Join(t.TempDir(), "nope.json"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultQuantity, cfg.Quantity)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))
	t.Setenv("TRIPTYCH_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadEnvValuesAreIgnored(t *testing.T) {
	t.Setenv("TRIPTYCH_CONFIG", filepath.Join(t.TempDir(), "nope.json"))
	t.Setenv("TRIPTYCH_QUANTITY", "many")
	t.Setenv("TRIPTYCH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultQuantity, cfg.Quantity)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestDuration_UnmarshalForms(t *testing.T) {
	var d duration
	require.NoError(t, json.Unmarshal([]byte(`"3s"`), &d))
	assert.Equal(t, 3*time.Second, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
