package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"mocksh/internal/batch"
	"mocksh/internal/metrics"
	"mocksh/internal/shell"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type string `json:"type"` // exec
	Line string `json:"line"`
}

// StateMessage is the full view state after every line.
type StateMessage struct {
	Type       string              `json:"type"` // state
	Session    string              `json:"session"`
	Prompt     string              `json:"prompt"`
	Cwd        string              `json:"cwd"`
	Transcript []batch.ReportEntry `json:"transcript"`
	Scroll     bool                `json:"scroll"`
}

// ErrorMessage reports a protocol problem, never a shell error.
type ErrorMessage struct {
	Type    string `json:"type"` // error
	Message string `json:"message"`
}

// handleShell owns one Session for the life of the connection. The session
// is only touched from this goroutine.
func (s *Server) handleShell(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := s.logger.With(zap.String("session", id))
	sess := shell.NewSession(s.seed.Clone(),
		shell.WithPrompt(s.prompt),
		shell.WithObserver(metrics.ObserveResult),
		shell.WithObserver(func(r shell.Result) {
			logger.Debug("command executed",
				zap.String("kind", r.Kind.String()),
				zap.String("command", r.Entry.Command),
				zap.String("cwd", r.Cwd.String()),
			)
		}),
	)

	metrics.SessionOpened(Frontend)
	defer metrics.SessionClosed()
	logger.Info("shell session opened", zap.String("remote_addr", c.Request.RemoteAddr))
	defer logger.Info("shell session closed")

	if err := conn.WriteJSON(stateOf(id, sess)); err != nil {
		logger.Warn("write initial state", zap.Error(err))
		return
	}

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket read ended", zap.Error(err))
			}
			return
		}

		var reply any
		switch msg.Type {
		case "exec":
			sess.Submit(msg.Line)
			reply = stateOf(id, sess)
		default:
			reply = ErrorMessage{Type: "error", Message: "unknown message type: " + msg.Type}
		}
		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func stateOf(id string, sess *shell.Session) StateMessage {
	report := batch.BuildReport(sess)
	return StateMessage{
		Type:       "state",
		Session:    id,
		Prompt:     report.Prompt,
		Cwd:        report.Cwd,
		Transcript: report.Transcript,
		Scroll:     true,
	}
}
