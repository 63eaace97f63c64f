package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mocksh/internal/shell"
)

// copiedFor is how long the copied marker stays visible.
const copiedFor = 2 * time.Second

// MsgCopied reports the outcome of a clipboard write.
type MsgCopied struct {
	Err error
	Seq int
}

// MsgCopyReset hides the copied marker for copy number Seq.
type MsgCopyReset struct{ Seq int }

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Ready = true
		m.resize()
		return m, nil

	case MsgCopied:
		if msg.Seq != m.copySeq {
			return m, nil
		}
		if msg.Err != nil {
			m.Err = msg.Err
			m.Copied = false
			return m, nil
		}
		m.Err = nil
		m.Copied = true
		seq := msg.Seq
		return m, tea.Tick(copiedFor, func(time.Time) tea.Msg { return MsgCopyReset{Seq: seq} })

	case MsgCopyReset:
		if msg.Seq == m.copySeq {
			m.Copied = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "up":
				if m.HelpScrollY > 0 {
					m.HelpScrollY--
				}
			case "down":
				if m.HelpScrollY < m.helpMaxScroll() {
					m.HelpScrollY++
				}
			case "esc", "f1", "q":
				m.ShowHelp = false
				m.HelpScrollY = 0
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.ShowHelp = true
			return m, nil
		case "ctrl+t":
			if m.HasSnippet && (m.ShowShell || m.Snippet.AllowClose) {
				m.ShowShell = !m.ShowShell
				if m.ShowShell {
					m.Input.Focus()
					return m, textinput.Blink
				}
				m.Input.Blur()
			}
			return m, nil
		}

		if !m.ShowShell {
			return m.updateCode(msg)
		}
		return m.updateShell(msg)
	}

	if m.ShowShell {
		m.Input, cmd = m.Input.Update(msg)
	}
	return m, cmd
}

func (m AppModel) updateCode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "ctrl+y", "y":
		m.copySeq++
		return m, m.copyCmd(m.copySeq)
	}
	m.Code, cmd = m.Code.Update(msg)
	return m, cmd
}

func (m AppModel) updateShell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyEnter:
		m.submit(m.Input.Value())
		return m, nil
	case tea.KeyPgUp, tea.KeyPgDown:
		m.Transcript, cmd = m.Transcript.Update(msg)
		return m, cmd
	}
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit runs one line. The transcript is re-rendered before scrolling so
// the viewport measures the new content.
func (m *AppModel) submit(line string) {
	m.Input.SetValue("")
	m.Session.Submit(line)
	m.refreshPrompt()
	m.refreshTranscript()
}

func (m AppModel) copyCmd(seq int) tea.Cmd {
	code, write := m.Snippet.Code, m.copyFn
	return func() tea.Msg {
		return MsgCopied{Err: write(code), Seq: seq}
	}
}

func (m *AppModel) resize() {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	// Title, input line and footer
	bodyHeight := h - 4
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.Transcript.Width = w
	m.Transcript.Height = bodyHeight
	m.Code.Width = w
	m.Code.Height = bodyHeight
	m.refreshPrompt()
	m.refreshTranscript()
	m.refreshCode()
}

// refreshPrompt also resizes the input, since the prompt grows with cwd.
func (m *AppModel) refreshPrompt() {
	m.Input.Prompt = promptStyle.Render(m.Session.Prompt()) + " "
	m.Input.Width = m.WindowSize.Width - lipgloss.Width(m.Input.Prompt) - 1
	if m.Input.Width < 10 {
		m.Input.Width = 10
	}
}

func (m *AppModel) refreshTranscript() {
	m.Transcript.SetContent(renderTranscript(m.Session))
	m.Transcript.GotoBottom()
}

func (m *AppModel) refreshCode() {
	if m.HasSnippet {
		m.Code.SetContent(renderCode(m.Snippet))
	}
}

// Init starts the cursor blinking.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

var _ tea.Model = AppModel{}

// Frontend names the session source for metrics and logs.
const Frontend = "tui"

// Run is a convenience for main: it runs the program until quit.
func Run(s *shell.Session, opts ...Option) error {
	m := InitialModel(s, opts...)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
