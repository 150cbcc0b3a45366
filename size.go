package treemap

import "math"

// UpdateDataSizes recomputes DataSize bottom-up for this whole subtree and
// returns the refreshed size of this node. A leaf returns its stored size
// unchanged; the empty tree yields 0; an internal node becomes the sum of
// its freshly recomputed subtree sizes.
//
// The core never watches external sources; callers must invoke this after
// any out-of-band change to leaf sizes, and after Move, DeleteSelf, or
// ChangeSize, to restore aggregate consistency.
func (t *Tree) UpdateDataSizes() int {
	if t.IsEmpty() {
		t.DataSize = 0
		return 0
	}
	if len(t.subtrees) == 0 {
		return t.DataSize
	}
	t.DataSize = 0
	for _, sub := range t.subtrees {
		t.DataSize += sub.UpdateDataSizes()
	}
	return t.DataSize
}

// ChangeSize changes this leaf's DataSize by the given factor. The amount
// of change is ceil(DataSize * |factor|), so some change is always made.
// Shrinking clamps at a minimum size of 1, keeping the layout math
// well-defined. No-op on internal nodes and the empty tree.
//
// Only the leaf itself is mutated; ancestor aggregates stay stale until
// the caller runs UpdateDataSizes on the root.
func (t *Tree) ChangeSize(factor float64) {
	if len(t.subtrees) > 0 || t.IsEmpty() {
		return
	}
	change := int(math.Ceil(float64(t.DataSize) * math.Abs(factor)))
	if factor < 0 {
		if t.DataSize-change < 1 {
			t.DataSize = 1
		} else {
			t.DataSize -= change
		}
	} else {
		t.DataSize += change
	}
}
