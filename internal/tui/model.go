package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"mocksh/internal/model"
	"mocksh/internal/shell"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Session *shell.Session
	Snippet model.Snippet
	Err     error

	// UI State
	WindowSize tea.WindowSizeMsg
	Ready      bool

	// View Modes
	HasSnippet bool
	ShowShell  bool // false while the code viewer is in front
	ShowHelp   bool
	Copied     bool
	copySeq    int

	HelpContent string
	HelpScrollY int

	// Components
	Input      textinput.Model
	Transcript viewport.Model
	Code       viewport.Model

	copyFn func(string) error
}

// Option configures the model.
type Option func(*AppModel)

// WithSnippet starts the program in the code viewer.
func WithSnippet(s model.Snippet) Option {
	return func(m *AppModel) {
		m.Snippet = s
		m.HasSnippet = true
		m.ShowShell = false
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *AppModel) { m.copyFn = fn }
}

// InitialModel returns the initial state around an existing session.
func InitialModel(s *shell.Session, opts ...Option) AppModel {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Focus()

	m := AppModel{
		Session:     s,
		ShowShell:   true,
		Input:       ti,
		Transcript:  viewport.New(80, 20),
		Code:        viewport.New(80, 20),
		HelpContent: helpText,
		copyFn:      clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshPrompt()
	m.refreshTranscript()
	m.refreshCode()
	return m
}
