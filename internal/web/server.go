package web

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"mocksh/internal/batch"
	"mocksh/internal/logging"
	"mocksh/internal/metrics"
	"mocksh/internal/model"
	"mocksh/internal/seed"
	"mocksh/internal/shell"
	"mocksh/internal/vfs"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// Frontend names web sessions in metrics and logs.
const Frontend = "web"

// Server serves the shell over a websocket. Every connection gets its own
// session over a private copy of the seed tree.
type Server struct {
	engine   *gin.Engine
	upgrader *websocket.Upgrader
	seed     *vfs.Node
	prompt   shell.Prompt
	logger   *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithPrompt sets the identity shown to web sessions.
func WithPrompt(p shell.Prompt) Option {
	return func(s *Server) { s.prompt = p }
}

// NewServer builds the router around seed. seed is never mutated.
func NewServer(seedRoot *vfs.Node, opts ...Option) *Server {
	if seedRoot == nil {
		seedRoot = vfs.NewDir()
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHostOrigin,
		},
		seed:   seedRoot,
		prompt: shell.DefaultPrompt(),
		logger: logging.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.Use(s.requestLogger())

	sub, _ := fs.Sub(staticFS, "static")
	index, _ := fs.ReadFile(sub, "index.html")
	s.engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	s.engine.StaticFS("/static", http.FS(sub))

	api := s.engine.Group("/api")
	api.GET("/help", s.handleHelp)
	api.GET("/seed", s.handleSeed)
	api.GET("/shell/ws", s.handleShell)

	s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on addr and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	// Listen first so a busy port fails immediately
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.logger.Info("web server listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHelp(c *gin.Context) {
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(text))
}

// handleSeed shows the starting tree, as a tree drawing or as YAML.
func (s *Server) handleSeed(c *gin.Context) {
	if c.Query("format") == "yaml" {
		b, err := seed.Marshal(s.seed)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/yaml", b)
		return
	}
	files, dirs := s.seed.Stats()
	c.JSON(http.StatusOK, gin.H{
		"tree":    vfs.RenderTree(s.seed, "/"),
		"summary": batch.Summary(s.seed),
		"files":   files,
		"dirs":    dirs,
	})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		duration := time.Since(start)
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), duration)
		s.logger.Debug("request completed",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		)
	}
}

// sameHostOrigin accepts non-browser clients, pages served by this host and
// local development pages.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1":
		return true
	}
	return false
}
