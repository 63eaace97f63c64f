package shell

import "mocksh/internal/model"

// Default identity shown in the prompt.
const (
	DefaultUser = "root"
	DefaultHost = "asteroid"
)

// Prompt renders the PS1-style prefix shown before each command.
type Prompt struct {
	User string
	Host string
}

// DefaultPrompt is root@asteroid.
func DefaultPrompt() Prompt {
	return Prompt{User: DefaultUser, Host: DefaultHost}
}

// Identity is the user@host part.
func (p Prompt) Identity() string {
	user, host := p.User, p.Host
	if user == "" {
		user = DefaultUser
	}
	if host == "" {
		host = DefaultHost
	}
	return user + "@" + host
}

// Render formats the full prompt for cwd, e.g. "root@asteroid:/sys#".
func (p Prompt) Render(cwd Path) string {
	return p.RenderDir(cwd.String())
}

// RenderDir formats the prompt for an already rendered directory.
func (p Prompt) RenderDir(dir string) string {
	if dir == "" {
		dir = "/"
	}
	return p.Identity() + ":" + dir + model.IconPromptEnd
}
