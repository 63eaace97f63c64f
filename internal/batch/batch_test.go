package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocksh/internal/shell"
	"mocksh/internal/vfs"
)

func newSession() *shell.Session {
	root := vfs.NewDir()
	root.Add("README.txt", vfs.NewFile("hello"))
	return shell.NewSession(root)
}

func TestRun_PlainTranscript(t *testing.T) {
	s := newSession()
	require.NoError(t, Run(strings.NewReader("ls\nmkdir docs\ncd docs\nfoo\n"), s))

	var out bytes.Buffer
	require.NoError(t, Write(&out, s, Options{}))
	want := strings.Join([]string{
		"root@asteroid:/# ls",
		"README.txt",
		"root@asteroid:/# mkdir docs",
		"root@asteroid:/# cd docs",
		"root@asteroid:/docs# foo",
		"bash: foo: command not found",
		"root@asteroid:/docs#",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRun_ClearResetsTranscript(t *testing.T) {
	s := newSession()
	require.NoError(t, Run(strings.NewReader("ls\nls\nclear\ncat README.txt\n"), s))
	assert.Equal(t, "root@asteroid:/# cat README.txt\nhello\nroot@asteroid:/#\n", Render(s, false))
}

func TestRun_EmptyLines(t *testing.T) {
	s := newSession()
	require.NoError(t, Run(strings.NewReader("\n\n"), s))
	assert.Equal(t, "root@asteroid:/#\nroot@asteroid:/#\nroot@asteroid:/#\n", Render(s, false))
}

func TestWrite_JSON(t *testing.T) {
	s := newSession()
	require.NoError(t, Run(strings.NewReader("mkdir docs\ncd docs\nls\n"), s))

	var out bytes.Buffer
	require.NoError(t, Write(&out, s, Options{JSON: true}))

	var r Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "root@asteroid:/docs#", r.Prompt)
	assert.Equal(t, "/docs", r.Cwd)
	assert.Equal(t, 1, r.Files)
	assert.Equal(t, 1, r.Dirs)
	require.Len(t, r.Transcript, 3)
	assert.Equal(t, "root@asteroid:/docs#", r.Transcript[2].Prompt)
	assert.Equal(t, "ls", r.Transcript[2].Command)
}

func TestRender_Colored(t *testing.T) {
	s := newSession()
	s.Submit("nope")
	out := Render(s, true)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "bash: nope: command not found")
}

func TestLooksLikeError(t *testing.T) {
	assert.True(t, looksLikeError("Usage: cd <directory>"))
	assert.True(t, looksLikeError("rm: cannot remove 'x': Is a directory"))
	assert.False(t, looksLikeError("README.txt   docs"))
}

func TestSummary(t *testing.T) {
	s := newSession()
	s.Submit("mkdir a")
	assert.Equal(t, "1 directories, 1 files", Summary(s.Root()))
}

func TestRun_VeryLongLine(t *testing.T) {
	s := newSession()
	long := "echo " + strings.Repeat("x", 2<<20)
	require.NoError(t, Run(strings.NewReader("ls\n"+long+"\nmkdir after\n"), s))

	entries := s.Transcript()
	require.Len(t, entries, 3)
	assert.Equal(t, long, entries[1].Command)
	assert.Equal(t, []string{"README.txt", "after"}, s.Root().Names())
}

func TestRun_CRLFAndMissingFinalNewline(t *testing.T) {
	s := newSession()
	require.NoError(t, Run(strings.NewReader("mkdir a\r\nmkdir b"), s))
	assert.Equal(t, []string{"README.txt", "a", "b"}, s.Root().Names())
}
