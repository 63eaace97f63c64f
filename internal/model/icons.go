package model

// Glyphs shared by the tree renderer and the UI.
// Box-drawing characters are single-width in every terminal we target.
const (
	TreeBranch = "├── " // child with more siblings after it
	TreeLast   = "└── " // last child
	TreePipe   = "│   " // indent under a non-last child
	TreeSpace  = "    " // indent under a last child

	IconPromptEnd = "#"
	IconCopied    = "✓"
	IconCopy      = "⧉"
)
