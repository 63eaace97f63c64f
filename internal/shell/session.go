package shell

import (
	"mocksh/internal/model"
	"mocksh/internal/vfs"
)

// Session is one shell view: a tree, a working directory and a transcript.
// It has a single owner and no locking; callers must not share it between
// goroutines.
type Session struct {
	root       *vfs.Node
	cwd        Path
	transcript []model.Entry
	prompt     Prompt
	observers  []func(Result)
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the user@host identity.
func WithPrompt(p Prompt) Option {
	return func(s *Session) { s.prompt = p }
}

// WithObserver registers fn to be called after every submitted line, once
// the result has been applied.
func WithObserver(fn func(Result)) Option {
	return func(s *Session) { s.observers = append(s.observers, fn) }
}

// NewSession takes ownership of root. Pass a clone if the tree is shared.
func NewSession(root *vfs.Node, opts ...Option) *Session {
	if root == nil {
		root = vfs.NewDir()
	}
	s := &Session{
		root:   root,
		cwd:    Path{},
		prompt: DefaultPrompt(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit executes one line and applies its result.
func (s *Session) Submit(line string) Result {
	res := Execute(s.root, s.cwd, line)
	s.root = res.Root
	if vfs.GetNodeAtPath(s.root, res.Cwd) != nil {
		s.cwd = res.Cwd
	}

	switch res.Action {
	case ActionClear:
		s.transcript = nil
	case ActionAppend:
		s.transcript = append(s.transcript, res.Entry)
	}

	for _, fn := range s.observers {
		fn(res)
	}
	return res
}

// Transcript returns a copy of the scroll-back, oldest first.
func (s *Session) Transcript() []model.Entry {
	out := make([]model.Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Len is the number of transcript entries.
func (s *Session) Len() int { return len(s.transcript) }

// Cwd returns a copy of the working directory.
func (s *Session) Cwd() Path { return s.cwd.Clone() }

// Root exposes the tree for read-only rendering.
func (s *Session) Root() *vfs.Node { return s.root }

// Prompt renders the prompt for the current directory.
func (s *Session) Prompt() string { return s.prompt.Render(s.cwd) }

// PromptFor renders the prompt an entry was typed at.
func (s *Session) PromptFor(e model.Entry) string { return s.prompt.RenderDir(e.Dir) }
