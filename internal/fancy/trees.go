package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

func newTree() *tree.Tree {
	return tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(palette[RoleBranch])
}

// Tree returns an empty tree with rounded, dimmed branches.
func Tree() *tree.Tree {
	return newTree()
}

// Section returns a bold header node followed by a muted item count, e.g. "Datasets (3)".
func Section(title string, count int) *tree.Tree {
	return newTree().Root(lipgloss.JoinHorizontal(
		lipgloss.Top,
		Paint(RoleHeader, title),
		" ",
		Paint(RoleMuted, fmt.Sprintf("(%d)", count)),
	))
}

// Branch is a tree node that collects "label: value" leaves.
type Branch struct {
	tree *tree.Tree
}

// NewBranch creates a branch whose root is title painted in role r.
func NewBranch(r Role, title string) *Branch {
	return &Branch{tree: newTree().Root(Paint(r, title))}
}

// DatasetBranch creates a branch for a scraper dataset.
func DatasetBranch(name string) *Branch { return NewBranch(RoleDataset, name) }

// ModeBranch creates a branch for a dataset mode.
func ModeBranch(name string) *Branch { return NewBranch(RoleMode, name) }

// SectionBranch creates a branch under a bold header.
func SectionBranch(title string) *Branch { return NewBranch(RoleHeader, title) }

func (b *Branch) Tree() *tree.Tree {
	return b.tree
}

// Child appends a node, which may be a string or another tree.
func (b *Branch) Child(child any) *Branch {
	b.tree.Child(child)
	return b
}

// Field appends a "label: value" leaf. Empty strings and nil are skipped.
func (b *Branch) Field(label string, value any) *Branch {
	switch v := value.(type) {
	case nil:
		return b
	case string:
		if v == "" {
			return b
		}
	}
	b.tree.Child(fmt.Sprintf("%s: %v", label, value))
	return b
}
