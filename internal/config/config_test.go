package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFile_ReturnsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Equal(t, "root", cfg.PromptUser())
	assert.Equal(t, "asteroid", cfg.PromptHost())
	assert.Equal(t, "127.0.0.1:8089", cfg.WebAddr())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
}

func TestEnsureDefaultConfig_CreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := EnsureDefaultConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	cfg, gotPath, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(path), filepath.Clean(gotPath))
	assert.Equal(t, DefaultWebPort, cfg.WebPort())

	again, err := EnsureDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeConfig(t, `
prompt:
  user: guest
  host: ship
seed:
  file: world.yaml
web:
  host: 0.0.0.0
  port: 9090
log:
  level: debug
  format: console
  output: /tmp/x.log
`)
	cfg, got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "guest", cfg.PromptUser())
	assert.Equal(t, "ship", cfg.PromptHost())
	assert.Equal(t, "world.yaml", cfg.Seed.File)
	assert.Equal(t, "0.0.0.0:9090", cfg.WebAddr())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, "/tmp/x.log", cfg.LogOutput(true))
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"port":        "web:\n  port: 70000\n",
		"empty host":  "web:\n  host: \"  \"\n",
		"user":        "prompt:\n  user: \"a b\"\n",
		"host":        "prompt:\n  host: \"x:y\"\n",
		"seed":        "seed:\n  file: a.yaml\n  dir: ./b\n",
		"format":      "log:\n  format: xml\n",
		"snippet":     "snippet:\n  file: a.py\n  code: print()\n",
		"broken yaml": "web: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestNilConfigDefaults(t *testing.T) {
	var cfg *AppConfig
	assert.Equal(t, DefaultWebHost, cfg.WebHost())
	assert.Equal(t, DefaultWebPort, cfg.WebPort())
	assert.Equal(t, "stderr", cfg.LogOutput(false))
	_, ok, err := cfg.LoadSnippet()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadSnippet(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "escape.py")
	require.NoError(t, os.WriteFile(src, []byte("print('hi')\n\n"), 0o600))

	cfg, _, err := Load(writeConfig(t, "snippet:\n  file: "+src+"\n  line_numbers: false\n"))
	require.NoError(t, err)
	s, ok, err := cfg.LoadSnippet()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "escape.py", s.Filename)
	assert.Equal(t, "python", s.Language)
	assert.Equal(t, "print('hi')", s.Code)
	assert.False(t, s.LineNumbers)
	assert.True(t, s.AllowClose)

	cfg, _, err = Load(writeConfig(t, "snippet:\n  filename: notes.txt\n  code: |\n    one\n    two\n  allow_close: false\n"))
	require.NoError(t, err)
	s, ok, err = cfg.LoadSnippet()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "notes.txt", s.Filename)
	assert.Equal(t, []string{"one", "two"}, s.Lines())
	assert.False(t, s.AllowClose)

	cfg, _, err = Load(writeConfig(t, "snippet:\n  file: "+filepath.Join(dir, "missing.py")+"\n"))
	require.NoError(t, err)
	_, _, err = cfg.LoadSnippet()
	assert.Error(t, err)
}
