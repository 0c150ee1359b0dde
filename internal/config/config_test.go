package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "profile.yaml", cfg.Profile)
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, "README.md", cfg.Output)
	assert.Equal(t, filepath.Join(".readmegen", "canvas.json"), cfg.State)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.True(t, cfg.Render.Attribution)
	assert.True(t, cfg.Render.ContinueOnError)
	assert.False(t, cfg.Render.SectionMarkers)
	assert.Equal(t, "development", cfg.Log.Env)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readmegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile: me.yaml
template: full
theme: dark
server:
  host: 0.0.0.0
  port: 9001
watch:
  debounce: 1s
render:
  attribution: false
  section_markers: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "me.yaml", cfg.Profile)
	assert.Equal(t, "full", cfg.Template)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "0.0.0.0:9001", cfg.Addr())
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.False(t, cfg.Render.Attribution)
	assert.True(t, cfg.Render.SectionMarkers)

	// Keys the file omits keep their defaults.
	assert.Equal(t, "README.md", cfg.Output)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("READMEGEN_TEMPLATE", "minimal")
	t.Setenv("READMEGEN_SERVER_PORT", "4000")
	t.Setenv("READMEGEN_RENDER_ATTRIBUTION", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.Template)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.False(t, cfg.Render.Attribution)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readmegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: full\n"), 0o644))
	t.Setenv("READMEGEN_TEMPLATE", "minimal")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Template, "environment beats the file")
}
