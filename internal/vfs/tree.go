package vfs

import (
	"strings"

	"mocksh/internal/model"
)

// RenderTree draws n as an ASCII directory tree headed by label.
// Children appear in insertion order; nothing is sorted.
func RenderTree(n *Node, label string) string {
	var b strings.Builder
	b.WriteString(label)
	writeTree(&b, n, "")
	return b.String()
}

func writeTree(b *strings.Builder, n *Node, prefix string) {
	if n == nil || !n.IsDir || n.Children == nil {
		return
	}
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		connector, indent := model.TreeBranch, model.TreePipe
		if pair.Next() == nil {
			connector, indent = model.TreeLast, model.TreeSpace
		}
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(pair.Key)
		writeTree(b, pair.Value, prefix+indent)
	}
}
