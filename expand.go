package treemap

// Expand marks this node as expanded for display. No-op on leaves: a node
// with no subtrees has nothing to expand into.
//
// Expand touches only this node. Expanding a node whose ancestors are
// collapsed leaves the node invisible until the caller expands the path
// from the root as well; only that path matters for display.
func (t *Tree) Expand() {
	if len(t.subtrees) > 0 {
		t.expanded = true
	}
}

// ExpandAll expands this node and every internal node below it.
func (t *Tree) ExpandAll() {
	if len(t.subtrees) > 0 {
		t.expanded = true
		for _, sub := range t.subtrees {
			sub.ExpandAll()
		}
	}
}

// Collapse collapses this node and cascades aggressively: if the parent
// was expanded, the parent collapses too and the collapse spreads through
// all of the parent's subtrees, so this node's whole sibling neighbourhood
// folds up in one call. The cascade always recurses through this node's
// own subtrees as well.
func (t *Tree) Collapse() {
	t.expanded = false
	if t.parent != nil && t.parent.expanded {
		t.parent.expanded = false
		for _, sub := range t.parent.subtrees {
			sub.Collapse()
		}
	}
	for _, sub := range t.subtrees {
		sub.Collapse()
	}
}

// CollapseAll collapses every node in the whole tree this node belongs to,
// walking parent links to the root first.
func (t *Tree) CollapseAll() {
	root := t.Root()
	root.expanded = false
	root.collapseSubtrees()
}

func (t *Tree) collapseSubtrees() {
	for _, sub := range t.subtrees {
		sub.expanded = false
		sub.collapseSubtrees()
	}
}
