// Package config loads the optional mocksh settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mocksh/internal/model"
)

// AppConfig is read from a YAML file under the user's home directory.
// All fields are optional; accessors fall back to defaults.
//
// Example (~/.mocksh/config.yaml):
//
//	prompt:
//	  user: root
//	  host: asteroid
//	seed:
//	  file: ~/worlds/station.yaml
//	web:
//	  host: 127.0.0.1
//	  port: 8089
//	log:
//	  level: info
//	  format: json
//	  output: ~/.mocksh/mocksh.log
//	snippet:
//	  file: ~/notes/escape.py
//	  line_numbers: true
//	  allow_close: true
type AppConfig struct {
	Prompt  PromptConfig   `yaml:"prompt"`
	Seed    SeedConfig     `yaml:"seed"`
	Web     WebConfig      `yaml:"web"`
	Log     LogConfig      `yaml:"log"`
	Snippet *SnippetConfig `yaml:"snippet,omitempty"`
}

type PromptConfig struct {
	User *string `yaml:"user,omitempty"`
	Host *string `yaml:"host,omitempty"`
}

type SeedConfig struct {
	File string `yaml:"file,omitempty"`
	Dir  string `yaml:"dir,omitempty"`
}

type WebConfig struct {
	Host *string `yaml:"host,omitempty"`
	Port *int    `yaml:"port,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// SnippetConfig puts the TUI in code-viewer mode. Either File or Code is set.
type SnippetConfig struct {
	File        string `yaml:"file,omitempty"`
	Filename    string `yaml:"filename,omitempty"`
	Language    string `yaml:"language,omitempty"`
	Code        string `yaml:"code,omitempty"`
	LineNumbers *bool  `yaml:"line_numbers,omitempty"`
	AllowClose  *bool  `yaml:"allow_close,omitempty"`
}

const (
	DefaultWebHost  = "127.0.0.1"
	DefaultWebPort  = 8089
	DefaultLogLevel = "info"
	DefaultLogFile  = "mocksh.log"
)

// DefaultPaths returns the config dir and config file path.
func DefaultPaths() (configDir string, configFile string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("get user home dir: %w", err)
	}
	configDir = filepath.Join(home, ".mocksh")
	configFile = filepath.Join(configDir, "config.yaml")
	return configDir, configFile, nil
}

// Load reads the config at path, or ~/.mocksh/config.yaml when path is empty.
// A missing file yields defaults and no error.
func Load(path string) (*AppConfig, string, error) {
	configFile := model.ExpandTilde(path)
	if configFile == "" {
		_, def, err := DefaultPaths()
		if err != nil {
			return nil, "", err
		}
		configFile = def
	}

	cfg := &AppConfig{}

	b, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, configFile, nil
		}
		return nil, "", fmt.Errorf("read config file %s: %w", configFile, err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, "", fmt.Errorf("parse yaml config %s: %w", configFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w in %s", err, configFile)
	}
	return cfg, configFile, nil
}

// Validate checks values that have no sensible fallback.
func (c *AppConfig) Validate() error {
	if c.Web.Host != nil && strings.TrimSpace(*c.Web.Host) == "" {
		return errors.New("invalid web.host (empty)")
	}
	if port := c.WebPort(); port < 1 || port > 65535 {
		return fmt.Errorf("invalid web.port %d", port)
	}
	if c.Prompt.User != nil && strings.ContainsAny(*c.Prompt.User, " @:\t\n") {
		return fmt.Errorf("invalid prompt.user %q", *c.Prompt.User)
	}
	if c.Prompt.Host != nil && strings.ContainsAny(*c.Prompt.Host, " @:\t\n") {
		return fmt.Errorf("invalid prompt.host %q", *c.Prompt.Host)
	}
	if c.Seed.File != "" && c.Seed.Dir != "" {
		return errors.New("seed.file and seed.dir are mutually exclusive")
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	if s := c.Snippet; s != nil && s.File != "" && s.Code != "" {
		return errors.New("snippet.file and snippet.code are mutually exclusive")
	}
	return nil
}

// EnsureDefaultConfig writes a default config file if it doesn't already exist.
func EnsureDefaultConfig() (string, error) {
	configDir, configFile, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configFile); err == nil {
		return configFile, nil
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir %s: %w", configDir, err)
	}

	defaultCfg := AppConfig{
		Web: WebConfig{Host: ptr(DefaultWebHost), Port: ptr(DefaultWebPort)},
		Log: LogConfig{Level: DefaultLogLevel, Format: "json"},
	}
	b, err := yaml.Marshal(&defaultCfg)
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(configFile, b, 0o600); err != nil {
		return "", fmt.Errorf("write default config file %s: %w", configFile, err)
	}
	return configFile, nil
}

func (c *AppConfig) PromptUser() string {
	if c == nil || c.Prompt.User == nil || *c.Prompt.User == "" {
		return "root"
	}
	return *c.Prompt.User
}

func (c *AppConfig) PromptHost() string {
	if c == nil || c.Prompt.Host == nil || *c.Prompt.Host == "" {
		return "asteroid"
	}
	return *c.Prompt.Host
}

func (c *AppConfig) WebHost() string {
	if c == nil || c.Web.Host == nil {
		return DefaultWebHost
	}
	v := strings.TrimSpace(*c.Web.Host)
	if v == "" {
		return DefaultWebHost
	}
	return v
}

func (c *AppConfig) WebPort() int {
	if c == nil || c.Web.Port == nil {
		return DefaultWebPort
	}
	return *c.Web.Port
}

// WebAddr is host:port for the web server.
func (c *AppConfig) WebAddr() string {
	return fmt.Sprintf("%s:%d", c.WebHost(), c.WebPort())
}

func (c *AppConfig) LogLevel() string {
	if c == nil || c.Log.Level == "" {
		return DefaultLogLevel
	}
	return c.Log.Level
}

// LogOutput is where logs go. The TUI owns the terminal, so the
// interactive default is a file next to the config.
func (c *AppConfig) LogOutput(interactive bool) string {
	if c != nil && c.Log.Output != "" {
		return model.ExpandTilde(c.Log.Output)
	}
	if !interactive {
		return "stderr"
	}
	dir, _, err := DefaultPaths()
	if err != nil {
		return filepath.Join(os.TempDir(), DefaultLogFile)
	}
	return filepath.Join(dir, DefaultLogFile)
}

// LoadSnippet resolves the configured snippet. ok is false when none is set.
func (c *AppConfig) LoadSnippet() (snippet model.Snippet, ok bool, err error) {
	if c == nil || c.Snippet == nil {
		return model.Snippet{}, false, nil
	}
	sc := c.Snippet
	if sc.File != "" {
		snippet, err = model.ReadSnippet(sc.File)
		if err != nil {
			return model.Snippet{}, false, err
		}
	} else {
		snippet = model.Snippet{Code: sc.Code, LineNumbers: true, AllowClose: true}
	}
	if sc.Filename != "" {
		snippet.Filename = sc.Filename
	}
	if sc.Language != "" {
		snippet.Language = sc.Language
	}
	if sc.LineNumbers != nil {
		snippet.LineNumbers = *sc.LineNumbers
	}
	if sc.AllowClose != nil {
		snippet.AllowClose = *sc.AllowClose
	}
	return snippet, true, nil
}

func ptr[T any](v T) *T { return &v }
