package treemap

// DeleteSelf removes this node from the tree and reports whether the
// deletion took effect. A node with no parent cannot be deleted and
// returns false.
//
// If the parent keeps other subtrees, this node is simply unlinked; the
// parent chain's DataSize aggregates are left stale by contract, so the
// caller re-runs UpdateDataSizes when it needs them. If this node was the
// parent's only subtree the parent is emptied and deletes itself in turn,
// cascading upward until a parent with remaining subtrees is found or the
// root is reached (the root itself is never deleted, so a cascade that
// reaches it returns false with the root left childless).
func (t *Tree) DeleteSelf() bool {
	parent := t.parent
	if parent == nil {
		return false
	}
	if len(parent.subtrees) > 1 {
		t.removeFromParent()
		return true
	}
	parent.subtrees = nil
	return parent.DeleteSelf()
}

// Move makes this node the last subtree of destination. Only a leaf can be
// moved and only an internal node can receive it; any other combination is
// a silent no-op.
//
// If the old parent is left childless its DataSize is reset to 0, but no
// other aggregate on either the old or the new ancestor chain is updated;
// the caller re-runs UpdateDataSizes afterwards.
func (t *Tree) Move(destination *Tree) {
	if len(t.subtrees) > 0 || len(destination.subtrees) == 0 {
		return
	}
	parent := t.parent
	t.removeFromParent()
	if parent != nil && len(parent.subtrees) == 0 {
		parent.DataSize = 0
	}
	destination.subtrees = append(destination.subtrees, t)
	t.parent = destination
}

// Duplicate rebuilds an equivalent leaf from this node's source of truth,
// re-reading its size, and stores the copy as a sibling under the same
// parent. Returns the new node, or (nil, nil) if this node is not a leaf.
// Panics if the leaf has no attached Source; a rebuild failure (the origin
// vanished, I/O error) is returned as an error.
func (t *Tree) Duplicate() (*Tree, error) {
	if len(t.subtrees) > 0 {
		return nil, nil
	}
	fresh, err := t.requireSource("Duplicate").Rebuild()
	if err != nil {
		return nil, err
	}
	if t.parent != nil {
		t.parent.subtrees = append(t.parent.subtrees, fresh)
		fresh.parent = t.parent
	}
	return fresh, nil
}

// CopyPaste duplicates this leaf and moves the copy to be the last subtree
// of destination. Silent no-op unless this node is a leaf and destination
// is an internal node; the same stale-size contract as Move applies.
func (t *Tree) CopyPaste(destination *Tree) error {
	if len(t.subtrees) > 0 || len(destination.subtrees) == 0 {
		return nil
	}
	fresh, err := t.Duplicate()
	if err != nil {
		return err
	}
	fresh.Move(destination)
	return nil
}
