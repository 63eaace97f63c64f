package shell

import "strings"

// Invocation is one parsed input line.
type Invocation struct {
	Line string // trimmed input, as recorded in the transcript
	Name string
	Kind Kind
	Args []string
}

// Parse splits a raw line on whitespace. Token 0 names the command and the
// rest are positional arguments. Quotes, globs, pipes and redirections have
// no meaning here and arrive as ordinary arguments.
func Parse(line string) Invocation {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return Invocation{Kind: KindEmpty}
	}
	return Invocation{
		Line: trimmed,
		Name: fields[0],
		Kind: kindOf(fields[0]),
		Args: fields[1:],
	}
}

// Arg returns the i-th positional argument (1-based) or "" when absent.
func (inv Invocation) Arg(i int) string {
	if i < 1 || i > len(inv.Args) {
		return ""
	}
	return inv.Args[i-1]
}
