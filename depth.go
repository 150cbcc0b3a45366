package treemap

// shadeCap is the brightest grey applied to internal nodes; depths whose
// computed shade exceeds it keep their previous colour.
const shadeCap = 200

// UpdateDepths recomputes the depth of every node in this subtree, with
// this node at depth 0 and each child one deeper than its parent.
func (t *Tree) UpdateDepths() {
	t.depth = 0
	t.updateSubtreeDepths()
}

func (t *Tree) updateSubtreeDepths() {
	for _, sub := range t.subtrees {
		sub.depth = sub.parent.depth + 1
		sub.updateSubtreeDepths()
	}
}

// MaxDepth returns the maximum depth of this subtree: the longest edge
// count from this node down to a leaf. Leaves and the empty tree have a
// maximum depth of 0.
func (t *Tree) MaxDepth() int {
	if t.IsEmpty() || len(t.subtrees) == 0 {
		return 0
	}
	deepest := 1
	for _, sub := range t.subtrees {
		if d := sub.MaxDepth() + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}

// updateColours repaints every internal node in this subtree as a shade of
// grey proportional to its depth. A parentless node is forced to pure
// black. A shade above shadeCap is skipped rather than clamped, leaving
// that node's colour untouched; the behaviour is deliberate, matching the
// established palette.
func (t *Tree) updateColours(stepSize int) {
	if len(t.subtrees) == 0 || t.IsEmpty() {
		return
	}
	if t.parent == nil {
		t.colour = Color{}
	} else {
		shade := stepSize * t.depth
		if shade <= shadeCap {
			t.colour = Color{R: uint8(shade), G: uint8(shade), B: uint8(shade)}
		}
	}
	for _, sub := range t.subtrees {
		sub.updateColours(stepSize)
	}
}

// UpdateColoursAndDepths refreshes the depth of every node in this subtree
// and repaints internal nodes in greyscale, black at this node and
// brightening by a fixed step per level so the deepest internal nodes
// approach (but never pass) shadeCap. Called after construction and after
// any structural manipulation of the tree.
func (t *Tree) UpdateColoursAndDepths() {
	t.UpdateDepths()
	maxD := t.MaxDepth()
	step := shadeCap
	if maxD > 1 {
		step = shadeCap / (maxD - 1)
	}
	t.updateColours(step)
}
