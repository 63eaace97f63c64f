// Package vfs is the in-memory file tree behind the mock shell.
//
// A tree is a plain value owned by a single session. Nothing here is safe
// for concurrent use and nothing is persisted.
package vfs

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Children maps a single path segment to a child node, in insertion order.
type Children = orderedmap.OrderedMap[string, *Node]

// Node is either a directory (Children set) or a file (Content set).
type Node struct {
	IsDir    bool
	Content  string
	Children *Children
}

// NewDir returns an empty directory.
func NewDir() *Node {
	return &Node{IsDir: true, Children: orderedmap.New[string, *Node]()}
}

// NewFile returns a file holding content.
func NewFile(content string) *Node {
	return &Node{Content: content}
}

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil || n.Children == nil {
		return nil, false
	}
	return n.Children.Get(name)
}

// Add inserts or replaces a child. A file receiving a child is left as-is.
func (n *Node) Add(name string, child *Node) {
	if n.Children == nil {
		n.Children = orderedmap.New[string, *Node]()
	}
	n.Children.Set(name, child)
}

// Names returns the child names in insertion order.
func (n *Node) Names() []string {
	if n == nil || n.Children == nil {
		return nil
	}
	names := make([]string, 0, n.Children.Len())
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len is the number of children.
func (n *Node) Len() int {
	if n == nil || n.Children == nil {
		return 0
	}
	return n.Children.Len()
}

// Clone deep-copies the subtree rooted at n, preserving child order.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{IsDir: n.IsDir, Content: n.Content}
	if n.Children != nil {
		c.Children = orderedmap.New[string, *Node](n.Children.Len())
		for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
			c.Children.Set(pair.Key, pair.Value.Clone())
		}
	}
	return c
}

// Stats counts the files and directories below n (n itself excluded).
func (n *Node) Stats() (files, dirs int) {
	if n == nil || n.Children == nil {
		return 0, 0
	}
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		if pair.Value.IsDir {
			dirs++
		} else {
			files++
		}
		f, d := pair.Value.Stats()
		files += f
		dirs += d
	}
	return files, dirs
}
