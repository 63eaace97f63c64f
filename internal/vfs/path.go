package vfs

// GetNodeAtPath walks path from root. It returns nil as soon as a segment
// is missing or a file is reached before the path is exhausted.
func GetNodeAtPath(root *Node, path []string) *Node {
	node := root
	for _, segment := range path {
		if node == nil || !node.IsDir {
			return nil
		}
		child, ok := node.Child(segment)
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// SetNodeAtPath places newNode at path, creating missing intermediate
// directories on the way, and returns the (possibly new) root.
// An empty path replaces the root itself.
func SetNodeAtPath(root *Node, path []string, newNode *Node) *Node {
	if len(path) == 0 {
		return newNode
	}
	if root == nil {
		root = NewDir()
	}

	parent := root
	for _, segment := range path[:len(path)-1] {
		next, ok := parent.Child(segment)
		if !ok || next == nil {
			// Only reached with more segments to go, so it must be a directory
			next = NewDir()
			parent.Add(segment, next)
		}
		parent = next
	}
	parent.Add(path[len(path)-1], newNode)
	return root
}

// RemoveNodeAtPath deletes the node at path from its parent. Paths that do
// not resolve to an existing parent, and the empty path, leave root as-is.
func RemoveNodeAtPath(root *Node, path []string) *Node {
	if len(path) == 0 || root == nil {
		return root
	}

	parent := root
	for _, segment := range path[:len(path)-1] {
		next, ok := parent.Child(segment)
		if !ok || next == nil {
			return root
		}
		parent = next
	}
	if parent.Children != nil {
		parent.Children.Delete(path[len(path)-1])
	}
	return root
}
