package treemap

// Tree is one node of a treemap-compatible tree. Leaves carry an externally
// supplied data size; an internal node's size is always the sum of its
// subtrees' sizes. A single flat struct is used for every node kind (leaf,
// folder, empty) to avoid interface dispatch on the layout path.
//
// Ownership flows strictly from parent to child through the subtree slice;
// the parent pointer is a non-owning back-reference used for traversal and
// removal only.
//
// Invariants (hold after every exported method returns, except the
// documented stale-size windows of Move, DeleteSelf, and ChangeSize):
//   - DataSize >= 0.
//   - If a node has subtrees, DataSize equals the sum of their DataSize.
//   - An empty node (Name() == "") has no subtrees, no parent, and size 0.
//   - A node with a parent appears exactly once in that parent's subtrees.
//   - An expanded node's parent, if any, is expanded; a collapsed node has
//     no expanded descendants; a childless node is never expanded.
type Tree struct {
	// Rect is the rectangle assigned by the last UpdateRectangles call.
	// The zero Rect means not laid out.
	Rect Rect

	// DataSize is the weight of this subtree. For a leaf it is whatever
	// the adapter supplied; for an internal node it is the subtree sum.
	DataSize int

	name     string
	colour   Color
	subtrees []*Tree
	parent   *Tree
	expanded bool
	depth    int
	source   Source
}

// New creates a node with the given name, subtrees, and leaf size, and
// assigns it a random non-greyscale colour. Every supplied subtree is
// reparented to the new node. If any subtrees are supplied, dataSize is
// ignored and the node's size is recomputed as their sum.
//
// The empty name marks the empty tree; panics if an empty name is combined
// with subtrees or a non-zero size, or if dataSize is negative.
func New(name string, subtrees []*Tree, dataSize int) *Tree {
	if dataSize < 0 {
		panic("treemap: negative data size")
	}
	if name == "" && (len(subtrees) > 0 || dataSize != 0) {
		panic("treemap: empty tree cannot have subtrees or size")
	}
	t := &Tree{
		name:     name,
		colour:   randomColour(),
		subtrees: subtrees,
		DataSize: dataSize,
	}
	if len(subtrees) > 0 {
		t.DataSize = 0
		for _, sub := range subtrees {
			sub.parent = t
			t.DataSize += sub.DataSize
		}
	}
	return t
}

// IsEmpty reports whether this is the empty tree.
func (t *Tree) IsEmpty() bool {
	return t.name == ""
}

// Name returns the node's name, or "" for the empty tree.
func (t *Tree) Name() string {
	return t.name
}

// Parent returns the tree that holds this node as a subtree, or nil if the
// node is a root or detached.
func (t *Tree) Parent() *Tree {
	return t.parent
}

// Subtrees returns the subtree slice in caller-supplied order. The returned
// slice MUST NOT be mutated by the caller.
func (t *Tree) Subtrees() []*Tree {
	return t.subtrees
}

// NumSubtrees returns the number of direct subtrees.
func (t *Tree) NumSubtrees() int {
	return len(t.subtrees)
}

// IsLeaf reports whether this node has no subtrees. The empty tree counts
// as a leaf.
func (t *Tree) IsLeaf() bool {
	return len(t.subtrees) == 0
}

// Colour returns the node's current fill colour.
func (t *Tree) Colour() Color {
	return t.colour
}

// Depth returns the node's distance from the root as of the last
// UpdateDepths or UpdateColoursAndDepths call. Depths are maintained
// lazily; structural edits do not refresh them.
func (t *Tree) Depth() int {
	return t.depth
}

// Expanded reports whether this node is expanded for display.
func (t *Tree) Expanded() bool {
	return t.expanded
}

// Root walks parent links to the root of the tree this node belongs to.
func (t *Tree) Root() *Tree {
	root := t
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// removeFromParent detaches t from its parent's subtree slice without
// clearing t.parent. Uses copy+nil so the backing array does not retain a
// dangling pointer.
func (t *Tree) removeFromParent() {
	p := t.parent
	if p == nil {
		return
	}
	for i, sub := range p.subtrees {
		if sub == t {
			copy(p.subtrees[i:], p.subtrees[i+1:])
			p.subtrees[len(p.subtrees)-1] = nil
			p.subtrees = p.subtrees[:len(p.subtrees)-1]
			return
		}
	}
}
