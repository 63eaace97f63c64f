package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mocksh/internal/logging"
	"mocksh/internal/model"
	"mocksh/internal/vfs"
)

func init() {
	gin.SetMode(gin.TestMode)
	logging.Replace(zap.NewNop())
}

func testSeed() *vfs.Node {
	root := vfs.NewDir()
	root.Add("README.txt", vfs.NewFile("hello"))
	return root
}

func startServer(t *testing.T) (*httptest.Server, *vfs.Node) {
	t.Helper()
	seedRoot := testSeed()
	srv := httptest.NewServer(NewServer(seedRoot).Handler())
	t.Cleanup(srv.Close)
	return srv, seedRoot
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/shell/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	first := readState(t, conn)
	require.Empty(t, first.Transcript)
	require.Equal(t, "root@asteroid:/#", first.Prompt)
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) StateMessage {
	t.Helper()
	var msg StateMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "state", msg.Type)
	return msg
}

func exec(t *testing.T, conn *websocket.Conn, line string) StateMessage {
	t.Helper()
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "exec", Line: line}))
	return readState(t, conn)
}

func TestShellSocket_RunsCommands(t *testing.T) {
	srv, _ := startServer(t)
	conn := dial(t, srv)

	st := exec(t, conn, "ls")
	require.Len(t, st.Transcript, 1)
	assert.Equal(t, "README.txt", st.Transcript[0].Output)
	assert.True(t, st.Scroll)
	assert.NotEmpty(t, st.Session)

	exec(t, conn, "mkdir docs")
	st = exec(t, conn, "cd docs")
	assert.Equal(t, "root@asteroid:/docs#", st.Prompt)
	assert.Equal(t, "/docs", st.Cwd)

	st = exec(t, conn, "clear")
	assert.Empty(t, st.Transcript)
}

func TestShellSocket_SessionsAreIsolated(t *testing.T) {
	srv, seedRoot := startServer(t)
	a := dial(t, srv)
	b := dial(t, srv)

	exec(t, a, "rm README.txt")
	assert.Equal(t, "", exec(t, a, "ls").Transcript[1].Output)
	assert.Equal(t, "README.txt", exec(t, b, "ls").Transcript[0].Output)
	assert.Equal(t, []string{"README.txt"}, seedRoot.Names())
}

func TestShellSocket_UnknownMessage(t *testing.T) {
	srv, _ := startServer(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "resize"}))
	var msg ErrorMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "resize")

	// The connection stays usable
	assert.Equal(t, "README.txt", exec(t, conn, "ls").Transcript[0].Output)
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	srv, _ := startServer(t)
	resp, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "/api/shell/ws")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestHelp(t *testing.T) {
	srv, _ := startServer(t)
	resp, body := get(t, srv, "/api/help")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, model.Version)
	assert.NotContains(t, body, "{{VERSION}}")
}

func TestSeed(t *testing.T) {
	srv, _ := startServer(t)
	resp, body := get(t, srv, "/api/seed")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Tree  string `json:"tree"`
		Files int    `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "/\n└── README.txt", got.Tree)
	assert.Equal(t, 1, got.Files)

	_, body = get(t, srv, "/api/seed?format=yaml")
	assert.Equal(t, "README.txt: hello\n", body)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := startServer(t)
	dial(t, srv)
	_, body := get(t, srv, "/metrics")
	assert.Contains(t, body, "mocksh_sessions_opened_total")
}

func TestSameHostOrigin(t *testing.T) {
	r := httptest.NewRequest("GET", "http://shell.example/api/shell/ws", nil)
	assert.True(t, sameHostOrigin(r))

	r.Header.Set("Origin", "http://shell.example")
	assert.True(t, sameHostOrigin(r))

	r.Header.Set("Origin", "https://evil.example")
	assert.False(t, sameHostOrigin(r))

	r.Header.Set("Origin", "http://localhost:5173")
	assert.True(t, sameHostOrigin(r))

	r.Header.Set("Origin", "http://localhost.evil.example")
	assert.False(t, sameHostOrigin(r))

	r.Header.Set("Origin", "http://127.0.0.1.evil.example")
	assert.False(t, sameHostOrigin(r))

	r.Header.Set("Origin", "http://shell.example.evil")
	assert.False(t, sameHostOrigin(r))
}
