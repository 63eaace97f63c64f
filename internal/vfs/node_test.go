package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesKeepInsertionOrder(t *testing.T) {
	root := NewDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		root.Add(name, NewDir())
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, root.Names())

	root.Children.Delete("alpha")
	root.Add("alpha", NewFile(""))
	assert.Equal(t, []string{"zeta", "mid", "alpha"}, root.Names())
}

func TestCloneIsDeep(t *testing.T) {
	root := sampleTree()
	c := root.Clone()

	c.Add("new", NewDir())
	GetNodeAtPath(c, []string{"README.txt"}).Content = "changed"

	assert.Equal(t, []string{"README.txt", "sys"}, root.Names())
	assert.Equal(t, "hello", GetNodeAtPath(root, []string{"README.txt"}).Content)
	assert.Equal(t, []string{"README.txt", "sys", "new"}, c.Names())
}

func TestStats(t *testing.T) {
	files, dirs := sampleTree().Stats()
	assert.Equal(t, 1, files)
	assert.Equal(t, 2, dirs)

	files, dirs = NewFile("x").Stats()
	assert.Zero(t, files)
	assert.Zero(t, dirs)
}

func TestStatsSkipsNilChildren(t *testing.T) {
	root := SetNodeAtPath(NewDir(), []string{"a", "ghost"}, nil)
	root.Add("f", NewFile("x"))

	var files, dirs int
	assert.NotPanics(t, func() { files, dirs = root.Stats() })
	assert.Equal(t, 1, files)
	assert.Equal(t, 1, dirs)
}

func TestLenAndChildOnFile(t *testing.T) {
	f := NewFile("x")
	assert.Zero(t, f.Len())
	_, ok := f.Child("anything")
	assert.False(t, ok)
	assert.Nil(t, f.Names())
}
