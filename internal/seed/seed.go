// Package seed builds the starting file tree for a shell session.
//
// Seeds are written as YAML: a mapping is a directory, a string is a file,
// and an empty value is an empty directory. Key order becomes listing order,
// which is why decoding goes through yaml.Node instead of a Go map.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mocksh/internal/model"
	"mocksh/internal/vfs"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrNotMapping is returned when the top level of a seed is not a mapping.
var ErrNotMapping = errors.New("seed: top level must be a mapping")

// Default returns a fresh copy of the built-in seed tree.
func Default() *vfs.Node {
	root, err := Parse(defaultYAML)
	if err != nil {
		// The embedded file is covered by tests
		panic(fmt.Sprintf("seed: embedded default is invalid: %v", err))
	}
	return root
}

// LoadFile reads a YAML seed from disk.
func LoadFile(path string) (*vfs.Node, error) {
	b, err := os.ReadFile(model.ExpandTilde(path))
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	root, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a YAML seed document into a directory tree.
func Parse(data []byte) (*vfs.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		// Empty document
		return vfs.NewDir(), nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, ErrNotMapping
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	return decodeDir(top, "")
}

func decodeDir(m *yaml.Node, at string) (*vfs.Node, error) {
	dir := vfs.NewDir()
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("line %d: entry names must be non-empty strings", key.Line)
		}
		name := key.Value
		path := at + "/" + name

		switch {
		case value.Kind == yaml.MappingNode:
			child, err := decodeDir(value, path)
			if err != nil {
				return nil, err
			}
			dir.Add(name, child)
		case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
			dir.Add(name, vfs.NewDir())
		case value.Kind == yaml.ScalarNode:
			dir.Add(name, vfs.NewFile(value.Value))
		default:
			return nil, fmt.Errorf("line %d: %s must be a string or a mapping", value.Line, path)
		}
	}
	return dir, nil
}

// Marshal writes a tree back out in the seed format.
func Marshal(root *vfs.Node) ([]byte, error) {
	if root == nil || !root.IsDir {
		return nil, ErrNotMapping
	}
	return yaml.Marshal(encodeDir(root))
}

func encodeDir(n *vfs.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if n.Children == nil {
		return m
	}
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
		var value *yaml.Node
		switch {
		case !pair.Value.IsDir:
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Value.Content}
			if strings.Contains(pair.Value.Content, "\n") {
				value.Style = yaml.LiteralStyle
			}
		case pair.Value.Len() == 0:
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		default:
			value = encodeDir(pair.Value)
		}
		m.Content = append(m.Content, key, value)
	}
	return m
}
