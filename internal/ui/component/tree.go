package component

import (
	"context"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/autocomplete"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/selection"
	"github.com/bnema/listnav/internal/logging"
)

// TreeOptions holds configuration for creating a TreePattern. Scheduler is required.
type TreeOptions struct {
	ID        string
	Config    entity.ListConfig
	Roots     []*entity.TreeNode
	Value     []entity.ItemID
	Expanded  []entity.ItemID
	Scheduler port.Scheduler
	Sink      port.FocusSink
	Direction port.DirectionProvider
}

type visibleNode struct {
	node     *entity.TreeNode
	depth    int
	expanded bool
}

// TreePattern navigates the visible nodes of a tree as a vertical list and
// adds expand and collapse.
type TreePattern struct {
	ctx   context.Context
	roots []*entity.TreeNode
	all   *collection.View

	parent   map[entity.ItemID]entity.ItemID
	expanded map[entity.ItemID]bool
	// filterOpen holds parents opened by the current filter. It is dropped
	// when the filter changes, leaving expanded untouched.
	filterOpen map[entity.ItemID]bool

	query    string
	strategy entity.MatchStrategy
	visible  []visibleNode

	list *ListPattern
}

var _ Popup = (*TreePattern)(nil)

// NewTreePattern creates a tree pattern. Orientation is always vertical.
func NewTreePattern(ctx context.Context, opts TreeOptions) *TreePattern {
	t := &TreePattern{
		roots:    opts.Roots,
		parent:   make(map[entity.ItemID]entity.ItemID),
		expanded: make(map[entity.ItemID]bool, len(opts.Expanded)),
	}
	for _, id := range opts.Expanded {
		t.expanded[id] = true
	}

	var walk func(nodes []*entity.TreeNode, parent entity.ItemID)
	walk = func(nodes []*entity.TreeNode, parent entity.ItemID) {
		for _, n := range nodes {
			if parent != "" {
				t.parent[n.ID] = parent
			}
			walk(n.Children, n.ID)
		}
	}
	walk(opts.Roots, "")
	t.all = treeItems(opts.Roots)

	// Selected nodes must be reachable.
	for _, id := range opts.Value {
		t.expandAncestors(id)
	}

	cfg := opts.Config
	cfg.Orientation = entity.OrientationVertical
	t.list = newListPattern(ctx, "tree", ListOptions{
		ID:        opts.ID,
		Config:    cfg,
		Items:     t.all,
		Value:     opts.Value,
		Scheduler: opts.Scheduler,
		Sink:      opts.Sink,
		Direction: opts.Direction,
	})
	t.ctx = t.list.ctx
	t.rebuild()
	return t
}

// Source returns every node in depth-first order.
func (t *TreePattern) Source() collection.Collection {
	return t.all
}

// List exposes the list pattern over the visible nodes.
func (t *TreePattern) List() *ListPattern {
	return t.list
}

// Expanded reports whether id is expanded, by the user or by the filter.
func (t *TreePattern) Expanded(id entity.ItemID) bool {
	return t.expanded[id] || t.filterOpen[id]
}

// Expand opens id. Unknown ids and leaves are ignored.
func (t *TreePattern) Expand(id entity.ItemID) {
	if n := t.node(id); n != nil && n.HasChildren() && !t.Expanded(id) {
		t.expanded[id] = true
		t.rebuild()
	}
}

// Collapse closes id. An active descendant moves up to id.
func (t *TreePattern) Collapse(id entity.ItemID) {
	if !t.Expanded(id) {
		return
	}
	delete(t.expanded, id)
	delete(t.filterOpen, id)
	if active, ok := t.list.ActiveItem(); ok && t.isDescendant(active.ID, id) {
		t.list.active = id
	}
	t.rebuild()
}

// Filter keeps nodes that match query or have a matching descendant, and
// expands the ancestors of every match.
func (t *TreePattern) Filter(query string, strategy entity.MatchStrategy) {
	t.query, t.strategy = query, strategy
	t.filterOpen = nil
	if query != "" {
		t.filterOpen = make(map[entity.ItemID]bool)
		t.markFilterOpen(t.roots)
	}
	t.rebuild()
}

// OnKeydown handles expand and collapse keys and delegates the rest.
func (t *TreePattern) OnKeydown(ev entity.KeyEvent) bool {
	cfg := t.list.Config()
	if cfg.Disabled || !ev.Mods.None() {
		return t.list.OnKeydown(ev)
	}

	expandKey, collapseKey := entity.KeyArrowRight, entity.KeyArrowLeft
	if cfg.TextDirection == entity.DirectionRTL {
		expandKey, collapseKey = collapseKey, expandKey
	}

	active, ok := t.list.ActiveItem()
	if !ok {
		return t.list.OnKeydown(ev)
	}
	node := t.node(active.ID)

	switch ev.Key {
	case expandKey:
		if !node.HasChildren() {
			return true
		}
		if !t.Expanded(node.ID) {
			t.Expand(node.ID)
			return true
		}
		if i := collection.FirstEnabledFrom(t.list.Items(), t.list.ActiveIndex()+1); i >= 0 && t.parent[t.list.Items().At(i).ID] == node.ID {
			t.focus(i, cfg)
		}
		return true

	case collapseKey:
		if t.Expanded(node.ID) {
			t.Collapse(node.ID)
			return true
		}
		if p, ok := t.parent[node.ID]; ok {
			if i := t.list.Items().IndexOf(p); i >= 0 {
				t.focus(i, cfg)
			}
		}
		return true

	case entity.KeyEnter:
		if node.HasChildren() {
			t.toggle(node.ID)
			return true
		}
	}
	return t.list.OnKeydown(ev)
}

// OnPointerdown activates node i; pressing a parent toggles it.
func (t *TreePattern) OnPointerdown(i int, mods entity.Modifiers) bool {
	items := t.list.Items()
	if !collection.InRange(items, i) || t.list.Config().Disabled {
		return false
	}
	node := t.node(items.At(i).ID)
	if node.HasChildren() && node.Enabled() {
		t.list.SetActive(i)
		t.toggle(node.ID)
		return true
	}
	return t.list.OnPointerdown(i, mods)
}

// Snapshot returns the render state with depth and expansion per node.
func (t *TreePattern) Snapshot() ListSnapshot {
	snap := t.list.Snapshot()
	for i := range snap.Items {
		v := t.visible[i]
		snap.Items[i].Depth = v.depth
		snap.Items[i].Expanded = v.expanded
		snap.Items[i].Parent = v.node.HasChildren()
	}
	return snap
}

// Destroy releases the pattern.
func (t *TreePattern) Destroy() {
	t.list.Destroy()
}

// focus moves the active node and applies follow selection.
func (t *TreePattern) focus(i int, cfg entity.ListConfig) {
	t.list.SetActive(i)
	t.list.sel = selection.Follow(t.list.sel, t.list.Items(), i, cfg)
}

func (t *TreePattern) toggle(id entity.ItemID) {
	if t.Expanded(id) {
		t.Collapse(id)
		return
	}
	t.Expand(id)
}

func (t *TreePattern) rebuild() {
	t.visible = t.visible[:0]
	filtering := t.query != ""

	var walk func(nodes []*entity.TreeNode, depth int)
	walk = func(nodes []*entity.TreeNode, depth int) {
		for _, n := range nodes {
			self := !filtering || autocomplete.Matches(n.Label, t.query, t.strategy)
			below := filtering && t.descendantMatches(n)
			if !self && !below {
				continue
			}
			open := t.Expanded(n.ID)
			t.visible = append(t.visible, visibleNode{node: n, depth: depth, expanded: open && n.HasChildren()})
			if open {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t.roots, 0)

	items := make([]entity.Item, len(t.visible))
	for i, v := range t.visible {
		items[i] = v.node.Item
	}
	t.list.SetCollection(collection.NewView(items))

	logging.FromContext(t.ctx).Trace().
		Int("visible", len(items)).
		Str("query", t.query).
		Msg("tree rebuilt")
}

func (t *TreePattern) markFilterOpen(nodes []*entity.TreeNode) {
	for _, n := range nodes {
		if t.descendantMatches(n) {
			t.filterOpen[n.ID] = true
			t.markFilterOpen(n.Children)
		}
	}
}

func (t *TreePattern) descendantMatches(n *entity.TreeNode) bool {
	for _, c := range n.Children {
		if autocomplete.Matches(c.Label, t.query, t.strategy) || t.descendantMatches(c) {
			return true
		}
	}
	return false
}

func (t *TreePattern) expandAncestors(id entity.ItemID) {
	for p, ok := t.parent[id]; ok; p, ok = t.parent[p] {
		t.expanded[p] = true
	}
}

func (t *TreePattern) isDescendant(id, ancestor entity.ItemID) bool {
	for p, ok := t.parent[id]; ok; p, ok = t.parent[p] {
		if p == ancestor {
			return true
		}
	}
	return false
}

// IsParent reports whether id is a node with children.
func (t *TreePattern) IsParent(id entity.ItemID) bool {
	n := t.node(id)
	return n != nil && n.HasChildren()
}

func (t *TreePattern) node(id entity.ItemID) *entity.TreeNode {
	var found *entity.TreeNode
	var walk func(nodes []*entity.TreeNode) bool
	walk = func(nodes []*entity.TreeNode) bool {
		for _, n := range nodes {
			if n.ID == id {
				found = n
				return true
			}
			if walk(n.Children) {
				return true
			}
		}
		return false
	}
	walk(t.roots)
	return found
}

// treeItems flattens roots depth-first.
func treeItems(roots []*entity.TreeNode) *collection.View {
	var items []entity.Item
	var walk func(nodes []*entity.TreeNode)
	walk = func(nodes []*entity.TreeNode) {
		for _, n := range nodes {
			items = append(items, n.Item)
			walk(n.Children)
		}
	}
	walk(roots)
	return collection.NewView(items)
}
