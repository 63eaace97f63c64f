package seed

import (
	"fmt"
	"os"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"mocksh/internal/model"
	"mocksh/internal/vfs"
)

// MaxImportSize caps how much of a real file is copied into the tree.
const MaxImportSize = 64 * 1024

// Placeholder content for files that are too large to import.
const tooLargeContent = "[BINARY CONTENT TOO LARGE TO DISPLAY]"

// LoadDir imports a directory from the host as a seed tree.
func LoadDir(dir string) (*vfs.Node, error) {
	dir = model.ExpandTilde(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("seed dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("seed dir %s: not a directory", dir)
	}
	return FromFilesystem(osfs.New(dir), "/")
}

// FromFilesystem copies the subtree at dir of fs into a new tree.
// Symlinks and other special files are skipped.
func FromFilesystem(fs billy.Filesystem, dir string) (*vfs.Node, error) {
	root := vfs.NewDir()
	if err := importDir(fs, dir, root); err != nil {
		return nil, err
	}
	return root, nil
}

func importDir(fs billy.Filesystem, dir string, into *vfs.Node) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, e := range entries {
		path := fs.Join(dir, e.Name())
		switch {
		case e.IsDir():
			child := vfs.NewDir()
			if err := importDir(fs, path, child); err != nil {
				return err
			}
			into.Add(e.Name(), child)
		case e.Mode().IsRegular():
			if e.Size() > MaxImportSize {
				into.Add(e.Name(), vfs.NewFile(tooLargeContent))
				continue
			}
			b, err := util.ReadFile(fs, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			into.Add(e.Name(), vfs.NewFile(string(b)))
		}
	}
	return nil
}
