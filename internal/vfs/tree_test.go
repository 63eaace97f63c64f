package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	root := NewDir()
	root.Add("README.txt", NewFile("x"))
	sys := NewDir()
	protocols := NewDir()
	protocols.Add("containment.conf", NewFile(""))
	protocols.Add("emergency.sh", NewFile(""))
	sys.Add("protocols", protocols)
	sys.Add("ai", NewDir())
	root.Add("sys", sys)
	root.Add("var", NewDir())

	want := "/\n" +
		"├── README.txt\n" +
		"├── sys\n" +
		"│   ├── protocols\n" +
		"│   │   ├── containment.conf\n" +
		"│   │   └── emergency.sh\n" +
		"│   └── ai\n" +
		"└── var"
	assert.Equal(t, want, RenderTree(root, "/"))
}

func TestRenderTree_LastBranchIndent(t *testing.T) {
	root := NewDir()
	docs := NewDir()
	docs.Add("a.txt", NewFile(""))
	root.Add("docs", docs)

	assert.Equal(t, "docs\n└── docs\n    └── a.txt", RenderTree(root, "docs"))
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "/", RenderTree(NewDir(), "/"))
}
