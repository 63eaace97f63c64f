package shell

// Kind is the closed set of commands the interpreter understands.
type Kind int

const (
	KindEmpty Kind = iota
	KindLs
	KindCd
	KindCat
	KindMkdir
	KindRmdir
	KindRm
	KindTree
	KindClear
	KindCanned
	KindUnknown
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindLs:      "ls",
	KindCd:      "cd",
	KindCat:     "cat",
	KindMkdir:   "mkdir",
	KindRmdir:   "rmdir",
	KindRm:      "rm",
	KindTree:    "tree",
	KindClear:   "clear",
	KindCanned:  "canned",
	KindUnknown: "unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Mutates reports whether a successful run of k can change the tree.
func (k Kind) Mutates() bool {
	switch k {
	case KindMkdir, KindRmdir, KindRm:
		return true
	}
	return false
}

// kindOf maps a command name to its Kind. Matching is case-sensitive.
func kindOf(name string) Kind {
	switch name {
	case "":
		return KindEmpty
	case "ls":
		return KindLs
	case "cd":
		return KindCd
	case "cat":
		return KindCat
	case "mkdir":
		return KindMkdir
	case "rmdir":
		return KindRmdir
	case "rm":
		return KindRm
	case "tree":
		return KindTree
	case "clear":
		return KindClear
	}
	if _, ok := cannedResponses[name]; ok {
		return KindCanned
	}
	return KindUnknown
}
