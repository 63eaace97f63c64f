// Package batch runs a script of shell lines without a terminal UI and
// renders the resulting transcript.
package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mocksh/internal/shell"
	"mocksh/internal/vfs"
)

// Options controls how the transcript is written.
type Options struct {
	JSON  bool
	Color bool
}

// Report is the JSON form of a finished batch run.
type Report struct {
	Prompt     string        `json:"prompt"`
	Cwd        string        `json:"cwd"`
	Files      int           `json:"files"`
	Dirs       int           `json:"dirs"`
	Transcript []ReportEntry `json:"transcript"`
}

// ReportEntry is one transcript line with the prompt it was typed at.
type ReportEntry struct {
	Prompt  string `json:"prompt"`
	Command string `json:"command"`
	Output  string `json:"output"`
}

// Run submits every line of in to s, in order. Lines have no length limit.
func Run(in io.Reader, s *shell.Session) error {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			s.Submit(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading script: %w", err)
		}
	}
}

// BuildReport snapshots the session's transcript.
func BuildReport(s *shell.Session) Report {
	files, dirs := s.Root().Stats()
	r := Report{
		Prompt:     s.Prompt(),
		Cwd:        s.Cwd().String(),
		Files:      files,
		Dirs:       dirs,
		Transcript: []ReportEntry{},
	}
	for _, e := range s.Transcript() {
		r.Transcript = append(r.Transcript, ReportEntry{
			Prompt:  s.PromptFor(e),
			Command: e.Command,
			Output:  e.Output,
		})
	}
	return r
}

// Write renders the session transcript to out.
func Write(out io.Writer, s *shell.Session, opts Options) error {
	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(BuildReport(s))
	}
	_, err := io.WriteString(out, Render(s, opts.Color))
	return err
}

// Render formats the transcript the way the shell shows it, followed by
// the live prompt.
func Render(s *shell.Session, colored bool) string {
	promptColor := color.New(color.FgGreen, color.Bold)
	commandColor := color.New(color.FgWhite)
	errorColor := color.New(color.FgRed)
	if colored {
		promptColor.EnableColor()
		commandColor.EnableColor()
		errorColor.EnableColor()
	} else {
		promptColor.DisableColor()
		commandColor.DisableColor()
		errorColor.DisableColor()
	}

	var sb strings.Builder
	for _, e := range s.Transcript() {
		sb.WriteString(promptColor.Sprint(s.PromptFor(e)))
		if e.Command != "" {
			sb.WriteString(" ")
			sb.WriteString(commandColor.Sprint(e.Command))
		}
		sb.WriteString("\n")
		if e.Output == "" {
			continue
		}
		out := e.Output
		if looksLikeError(e.Output) {
			out = errorColor.Sprint(out)
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	sb.WriteString(promptColor.Sprint(s.Prompt()))
	sb.WriteString("\n")
	return sb.String()
}

// looksLikeError matches the shapes of the simulated error messages.
func looksLikeError(output string) bool {
	if strings.HasPrefix(output, "Usage: ") || strings.HasPrefix(output, "bash: ") {
		return true
	}
	for _, marker := range []string{"No such file or directory", "Is a directory", "Not a directory", "File exists", "Directory not empty"} {
		if strings.HasSuffix(output, marker) {
			return true
		}
	}
	return false
}

// Summary is a one-line description of the final tree.
func Summary(root *vfs.Node) string {
	files, dirs := root.Stats()
	return fmt.Sprintf("%d directories, %d files", dirs, files)
}
