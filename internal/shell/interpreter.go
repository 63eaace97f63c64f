package shell

import (
	"fmt"
	"strings"

	"mocksh/internal/model"
	"mocksh/internal/vfs"
)

// Action tells the presentation layer what to do with the transcript.
type Action int

const (
	// ActionAppend appends Result.Entry.
	ActionAppend Action = iota
	// ActionClear empties the transcript and appends nothing.
	ActionClear
)

// lsSeparator joins names in ls output.
const lsSeparator = "   "

// Result is the outcome of one input line.
type Result struct {
	Root   *vfs.Node
	Cwd    Path
	Action Action
	Entry  model.Entry
	Kind   Kind
}

// Execute runs one line against root with cwd as the working directory.
//
// Root is mutated in place by mkdir, rmdir and rm, and only after every
// check has passed, so a failed command leaves the tree untouched. The
// returned Cwd never aliases the one passed in.
func Execute(root *vfs.Node, cwd Path, line string) Result {
	inv := Parse(line)
	res := Result{
		Root:   root,
		Cwd:    cwd.Clone(),
		Action: ActionAppend,
		Entry:  model.Entry{Command: inv.Line, Dir: cwd.String()},
		Kind:   inv.Kind,
	}

	switch inv.Kind {
	case KindEmpty:
		// Recorded as an empty entry
	case KindClear:
		res.Action = ActionClear
	case KindLs:
		res.Entry.Output = list(root, cwd)
	case KindCd:
		res.Cwd, res.Entry.Output = changeDir(root, cwd, inv.Arg(1))
	case KindCat:
		res.Entry.Output = cat(root, cwd, inv.Arg(1))
	case KindMkdir:
		res.Root, res.Entry.Output = makeDir(root, cwd, inv.Arg(1))
	case KindRmdir:
		res.Root, res.Entry.Output = removeDir(root, cwd, inv.Arg(1))
	case KindRm:
		res.Root, res.Entry.Output = removeFile(root, cwd, inv.Arg(1))
	case KindTree:
		res.Entry.Output = tree(root, cwd, inv.Arg(1))
	case KindCanned:
		res.Entry.Output, _ = CannedResponse(inv.Name)
	case KindUnknown:
		res.Entry.Output = fmt.Sprintf("bash: %s: command not found", inv.Name)
	}
	return res
}

func list(root *vfs.Node, cwd Path) string {
	node := vfs.GetNodeAtPath(root, cwd)
	if node == nil || !node.IsDir {
		return "Error reading directory."
	}
	return strings.Join(node.Names(), lsSeparator)
}

func changeDir(root *vfs.Node, cwd Path, arg string) (Path, string) {
	if arg == "" {
		return cwd.Clone(), "Usage: cd <directory>"
	}
	if arg == ".." {
		return cwd.Parent(), ""
	}

	target := cwd.Join(arg)
	node := vfs.GetNodeAtPath(root, target)
	switch {
	case node == nil:
		return cwd.Clone(), "cd: no such file or directory: " + arg
	case !node.IsDir:
		return cwd.Clone(), "cd: not a directory: " + arg
	}
	return target, ""
}

func cat(root *vfs.Node, cwd Path, arg string) string {
	if arg == "" {
		return "Usage: cat <file>"
	}
	node := vfs.GetNodeAtPath(root, cwd.Join(arg))
	switch {
	case node == nil:
		return fmt.Sprintf("cat: %s: No such file or directory", arg)
	case node.IsDir:
		return fmt.Sprintf("cat: %s: Is a directory", arg)
	}
	return node.Content
}

func makeDir(root *vfs.Node, cwd Path, arg string) (*vfs.Node, string) {
	if arg == "" {
		return root, "Usage: mkdir <directory>"
	}
	target := cwd.Join(arg)
	if vfs.GetNodeAtPath(root, target) != nil {
		return root, fmt.Sprintf("mkdir: cannot create directory '%s': File exists", arg)
	}
	return vfs.SetNodeAtPath(root, target, vfs.NewDir()), ""
}

func removeDir(root *vfs.Node, cwd Path, arg string) (*vfs.Node, string) {
	if arg == "" {
		return root, "Usage: rmdir <directory>"
	}
	target := cwd.Join(arg)
	node := vfs.GetNodeAtPath(root, target)
	switch {
	case node == nil:
		return root, fmt.Sprintf("rmdir: failed to remove '%s': No such file or directory", arg)
	case !node.IsDir:
		return root, fmt.Sprintf("rmdir: failed to remove '%s': Not a directory", arg)
	case node.Len() > 0:
		return root, fmt.Sprintf("rmdir: failed to remove '%s': Directory not empty", arg)
	}
	return vfs.RemoveNodeAtPath(root, target), ""
}

func removeFile(root *vfs.Node, cwd Path, arg string) (*vfs.Node, string) {
	if arg == "" {
		return root, "Usage: rm <file>"
	}
	target := cwd.Join(arg)
	node := vfs.GetNodeAtPath(root, target)
	switch {
	case node == nil:
		return root, fmt.Sprintf("rm: cannot remove '%s': No such file or directory", arg)
	case node.IsDir:
		return root, fmt.Sprintf("rm: cannot remove '%s': Is a directory", arg)
	}
	return vfs.RemoveNodeAtPath(root, target), ""
}

func tree(root *vfs.Node, cwd Path, arg string) string {
	start, label := cwd, "/"
	if arg != "" {
		start, label = cwd.Join(arg), arg
	}
	node := vfs.GetNodeAtPath(root, start)
	switch {
	case node == nil:
		return fmt.Sprintf("tree: '%s': No such file or directory", arg)
	case !node.IsDir:
		return fmt.Sprintf("tree: '%s': Not a directory", arg)
	}
	return vfs.RenderTree(node, label)
}
