// Package tree renders the template root and generation progress.
package tree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/templates"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

// Node is a group or template below the template root
type Node struct {
	Name       string
	IsTemplate bool
	Children   []Node
}

// Build walks dir into a tree. Templates are leaves and come before groups,
// both sorted by name.
func Build(fs afero.Fs, dir string) (Node, error) {
	root := Node{Name: filepath.Base(dir)}
	children, err := build(fs, dir)
	if err != nil {
		return root, err
	}
	root.Children = children
	return root, nil
}

func build(fs afero.Fs, dir string) ([]Node, error) {
	listing, err := templates.List(fs, dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(listing.Templates)+len(listing.Groups))
	for _, name := range listing.Templates {
		nodes = append(nodes, Node{Name: name, IsTemplate: true})
	}
	for _, name := range listing.Groups {
		children, err := build(fs, filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, Node{Name: name, Children: children})
	}
	return nodes, nil
}

// Count returns the number of templates below n
func (n Node) Count() int {
	if n.IsTemplate {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

func (n Node) icon() string {
	if n.IsTemplate {
		return "📄"
	}
	return "📂"
}

// Render draws the tree with pterm
func Render(root Node) (string, error) {
	if len(root.Children) == 0 {
		return fmt.Sprintf("📁 %s\n", root.Name), nil
	}

	body, err := pterm.DefaultTree.WithRoot(toPterm(root)).Srender()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("📁 %s\n%s", root.Name, body), nil
}

func toPterm(n Node) pterm.TreeNode {
	node := pterm.TreeNode{Text: fmt.Sprintf("%s %s", n.icon(), n.Name)}
	for _, c := range n.Children {
		node.Children = append(node.Children, toPterm(c))
	}
	return node
}

// Plain draws the tree with box-drawing connectors and no colors
func Plain(root Node) string {
	var b strings.Builder
	b.WriteString(root.Name + "\n")
	writePlain(&b, root.Children, "")
	return b.String()
}

func writePlain(b *strings.Builder, nodes []Node, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		connector, extension := "├── ", "│   "
		if last {
			connector, extension = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%s %s\n", prefix, connector, n.icon(), n.Name)
		writePlain(b, n.Children, prefix+extension)
	}
}
