package shell

import "strings"

// Path is a working directory as segments below the root. Empty is root.
type Path []string

// String renders the path the way the prompt shows it.
func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}

// Join returns a new path with name appended. p is never aliased.
func (p Path) Join(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Parent drops the last segment. The parent of root is root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	out := make(Path, len(p)-1)
	copy(out, p[:len(p)-1])
	return out
}

// Clone copies p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}
