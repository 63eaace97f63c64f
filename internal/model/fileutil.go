package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// ReadSnippet loads the code shown in the viewer from a file on disk.
// The filename defaults to the base name of the path and trailing
// blank lines are dropped.
func ReadSnippet(filePath string) (Snippet, error) {
	result := Snippet{
		Filename:    filepath.Base(filePath),
		LineNumbers: true,
		AllowClose:  true,
	}

	file, err := os.Open(ExpandTilde(filePath))
	if err != nil {
		return result, fmt.Errorf("could not read snippet: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Generated files can have very long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("error reading snippet: %w", err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	result.Code = strings.Join(lines, "\n")
	result.Language = languageFor(result.Filename)
	return result, nil
}

// Lines splits the snippet into display lines.
func (s Snippet) Lines() []string {
	code := strings.TrimSpace(s.Code)
	if code == "" {
		return nil
	}
	return strings.Split(code, "\n")
}

func languageFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".py":
		return "python"
	case ".go":
		return "go"
	case ".sh", ".bash":
		return "bash"
	case ".js":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	default:
		return "text"
	}
}
