package entity

import (
	"errors"
	"strings"
	"time"
)

// SourceKind tells built-in item sources from user-imported ones.
type SourceKind string

const (
	SourceBuiltin SourceKind = "builtin"
	SourceUser    SourceKind = "user"
)

// Source is a named list of items that can back a listbox, tab list or popup.
type Source struct {
	Name        string
	Description string
	Kind        SourceKind
	Count       int
	UpdatedAt   time.Time
}

// ErrInvalidSourceName is returned for names that are empty or contain whitespace.
var ErrInvalidSourceName = errors.New("invalid source name")

// Validate checks the source name.
func (s *Source) Validate() error {
	if s.Name == "" || strings.ContainsAny(s.Name, " \t\n/") {
		return ErrInvalidSourceName
	}
	return nil
}

// SourceItem is a stored item with its tree position. Parent is empty for roots.
type SourceItem struct {
	Item
	Parent ItemID
}

// TreeNode is an item with ordered children.
type TreeNode struct {
	Item
	Children []*TreeNode
}

// HasChildren reports whether the node can expand.
func (n *TreeNode) HasChildren() bool {
	return len(n.Children) > 0
}

// BuildTree links flat source items into roots, keeping input order among
// siblings. Items whose parent is unknown become roots.
func BuildTree(items []SourceItem) []*TreeNode {
	nodes := make(map[ItemID]*TreeNode, len(items))
	for _, it := range items {
		nodes[it.ID] = &TreeNode{Item: it.Item}
	}

	var roots []*TreeNode
	for _, it := range items {
		node := nodes[it.ID]
		parent, ok := nodes[it.Parent]
		if it.Parent == "" || !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// FlatItems strips tree positions.
func FlatItems(items []SourceItem) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Item
	}
	return out
}
