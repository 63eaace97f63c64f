package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mocksh/internal/model"
	"mocksh/internal/shell"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const helpText = `mocksh

Shell commands
  ls               list the current directory
  cd <dir>         enter a directory, cd .. goes up
  cat <file>       print a file
  mkdir <dir>      create a directory
  rmdir <dir>      remove an empty directory
  rm <file>        remove a file
  tree [dir]       draw the directory tree
  clear            empty the scroll-back

Keys
  enter            run the typed line
  pgup/pgdown      scroll the transcript
  ctrl+t           switch between code viewer and shell
  ctrl+y           copy the code snippet
  f1               toggle this help
  ctrl+c           quit`

func (m AppModel) View() string {
	if !m.Ready {
		return "\n  Booting shell...\n"
	}
	if m.ShowHelp {
		return m.renderHelpDialog()
	}
	if !m.ShowShell {
		return m.renderCodeView()
	}
	return m.renderShellView()
}

func (m AppModel) renderShellView() string {
	title := titleStyle.Render("mocksh " + model.Version)
	footer := dimStyle.Render(m.footerText())
	return title + "\n" + m.Transcript.View() + "\n" + m.Input.View() + "\n" + footer
}

func (m AppModel) footerText() string {
	keys := []string{"enter run", "pgup/pgdn scroll", "f1 help", "ctrl+c quit"}
	if m.HasSnippet {
		keys = append(keys, "ctrl+t code")
	}
	return strings.Join(keys, " • ")
}

func (m AppModel) renderCodeView() string {
	name := m.Snippet.Filename
	if name == "" {
		name = "snippet"
	}
	header := titleStyle.Render(name)
	if m.Snippet.Language != "" {
		header += " " + dimStyle.Render(m.Snippet.Language)
	}

	copyHint := model.IconCopy + " ctrl+y copy"
	if m.Copied {
		copyHint = copiedStyle.Render(model.IconCopied + " copied")
	}
	keys := []string{copyHint, "↑/↓ scroll"}
	if m.Snippet.AllowClose {
		keys = append(keys, "ctrl+t shell")
	}
	keys = append(keys, "q quit")
	footer := dimStyle.Render(strings.Join(keys, " • "))
	if m.Err != nil {
		footer += "  " + errorStyle.Render(m.Err.Error())
	}
	return header + "\n" + m.Code.View() + "\n\n" + footer
}

// renderTranscript draws every entry as prompt, command, then output.
func renderTranscript(s *shell.Session) string {
	var sb strings.Builder
	for _, e := range s.Transcript() {
		sb.WriteString(promptStyle.Render(s.PromptFor(e)))
		if e.Command != "" {
			sb.WriteString(" " + e.Command)
		}
		sb.WriteString("\n")
		if e.Output != "" {
			sb.WriteString(outputStyle.Render(e.Output))
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func renderCode(s model.Snippet) string {
	lines := s.Lines()
	if !s.LineNumbers {
		return strings.Join(lines, "\n")
	}
	width := len(fmt.Sprint(len(lines)))
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(lineNumberStyle.Render(fmt.Sprintf("%*d", width, i+1)))
		sb.WriteString("  ")
		sb.WriteString(line)
	}
	return sb.String()
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	helpWidth := w * 80 / 100
	if helpWidth < 40 {
		helpWidth = 40
	}
	if helpWidth > w-4 {
		helpWidth = w - 4
	}
	helpHeight := helpDialogHeight(h)

	lines := strings.Split(m.HelpContent, "\n")
	contentHeight := helpHeight - 2

	startY := m.HelpScrollY
	if limit := m.helpMaxScroll(); startY > limit {
		startY = limit
	}

	endY := startY + contentHeight
	if endY > len(lines) {
		endY = len(lines)
	}

	dialog := lipgloss.NewStyle().
		Width(helpWidth).
		Height(helpHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(strings.Join(lines[startY:endY], "\n"))

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func helpDialogHeight(windowHeight int) int {
	h := windowHeight - 6
	if h < 5 {
		h = 5
	}
	return h
}

// helpMaxScroll is the largest useful help offset for the current window.
func (m AppModel) helpMaxScroll() int {
	lines := strings.Count(m.HelpContent, "\n") + 1
	limit := lines - (helpDialogHeight(m.WindowSize.Height) - 2)
	if limit < 0 {
		return 0
	}
	return limit
}
