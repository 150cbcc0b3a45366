package treemap

// Source is the capability an adapter attaches to the nodes it builds,
// tying each node back to its external origin. It powers leaf duplication
// (rebuilding an equivalent node from the source of truth) and
// human-readable path rendering, without the core knowing any concrete
// adapter type.
type Source interface {
	// Rebuild constructs a fresh equivalent of the node from its origin,
	// re-reading whatever the origin currently holds (for a file leaf,
	// its current size). The result has no parent.
	Rebuild() (*Tree, error)

	// Separator returns the string joining ancestor names into a path.
	Separator() string

	// Suffix returns the human descriptor appended after a node's path,
	// e.g. " (file, 58.00B)".
	Suffix(t *Tree) string

	// FullPath returns the adapter-native identity of the node, e.g. the
	// file-system path it was built from.
	FullPath() string
}

// SetSource attaches the adapter capability for this node. Adapters call
// this on every node they construct; nodes built directly with New have no
// source and panic on the source-backed queries below.
func (t *Tree) SetSource(src Source) {
	t.source = src
}

func (t *Tree) requireSource(op string) Source {
	if t.source == nil {
		panic("treemap: " + op + " on a node with no source")
	}
	return t.source
}

// PathString renders the path from the root down to this node, joining
// each ancestor's name with this node's separator.
func (t *Tree) PathString() string {
	if t.parent == nil {
		return t.name
	}
	return t.parent.PathString() + t.Separator() + t.name
}

// Separator returns the separator used between names in PathString.
// Panics if no adapter attached a Source to this node.
func (t *Tree) Separator() string {
	return t.requireSource("Separator").Separator()
}

// Suffix returns the human descriptor for this node, appended after its
// path by display code. Panics if no adapter attached a Source.
func (t *Tree) Suffix() string {
	return t.requireSource("Suffix").Suffix(t)
}

// FullPath returns this node's adapter-native identity. Panics if no
// adapter attached a Source.
func (t *Tree) FullPath() string {
	return t.requireSource("FullPath").FullPath()
}
