package treemap

import "testing"

// buildWorkshop constructs the canonical fixture tree used throughout the
// package tests, with subtrees in alphabetical order:
//
//	workshop (151)
//	├── activities (71)
//	│   ├── Plan.tex (2)
//	│   └── images (69)
//	│       ├── Q2.pdf (20)
//	│       └── Q3.pdf (49)
//	├── draft.pptx (58)
//	└── prep (22)
//	    ├── images (16)
//	    │   └── Cats.pdf (16)
//	    └── reading.md (6)
func buildWorkshop() *Tree {
	activitiesImages := New("images", []*Tree{
		New("Q2.pdf", nil, 20),
		New("Q3.pdf", nil, 49),
	}, 0)
	activities := New("activities", []*Tree{
		New("Plan.tex", nil, 2),
		activitiesImages,
	}, 0)
	prepImages := New("images", []*Tree{
		New("Cats.pdf", nil, 16),
	}, 0)
	prep := New("prep", []*Tree{
		prepImages,
		New("reading.md", nil, 6),
	}, 0)
	return New("workshop", []*Tree{
		activities,
		New("draft.pptx", nil, 58),
		prep,
	}, 0)
}

// findNode walks the subtree for the first node with the given name.
func findNode(t *Tree, name string) *Tree {
	if t.Name() == name {
		return t
	}
	for _, sub := range t.Subtrees() {
		if found := findNode(sub, name); found != nil {
			return found
		}
	}
	return nil
}

func assertValidColour(t *testing.T, c Color) {
	t.Helper()
	// uint8 channels cannot leave [0,255]; guard the invariant anyway so a
	// representation change would fail loudly here.
	for _, ch := range []int{int(c.R), int(c.G), int(c.B)} {
		if ch < 0 || ch > 255 {
			t.Errorf("colour %v out of range", c)
		}
	}
}

func assertSizesConsistent(t *testing.T, tr *Tree) {
	t.Helper()
	if tr.DataSize < 0 {
		t.Errorf("%s: negative DataSize %d", tr.Name(), tr.DataSize)
	}
	if tr.NumSubtrees() == 0 {
		return
	}
	sum := 0
	for _, sub := range tr.Subtrees() {
		assertSizesConsistent(t, sub)
		sum += sub.DataSize
	}
	if tr.DataSize != sum {
		t.Errorf("%s: DataSize = %d, want subtree sum %d", tr.Name(), tr.DataSize, sum)
	}
}

// --- Construction ---

func TestNewLeaf(t *testing.T) {
	leaf := New("draft.pptx", nil, 58)
	if leaf.Name() != "draft.pptx" {
		t.Errorf("Name = %q, want %q", leaf.Name(), "draft.pptx")
	}
	if leaf.NumSubtrees() != 0 {
		t.Errorf("NumSubtrees = %d, want 0", leaf.NumSubtrees())
	}
	if leaf.Parent() != nil {
		t.Error("Parent should be nil")
	}
	if leaf.DataSize != 58 {
		t.Errorf("DataSize = %d, want 58", leaf.DataSize)
	}
	if leaf.IsEmpty() {
		t.Error("leaf should not be empty")
	}
	if !leaf.IsLeaf() {
		t.Error("IsLeaf should be true")
	}
	if leaf.Rect != (Rect{}) {
		t.Errorf("Rect = %v, want zero", leaf.Rect)
	}
	assertValidColour(t, leaf.Colour())
}

func TestNewInternalReparentsAndSums(t *testing.T) {
	root := buildWorkshop()
	if root.DataSize != 151 {
		t.Errorf("root DataSize = %d, want 151", root.DataSize)
	}
	if root.NumSubtrees() != 3 {
		t.Fatalf("root NumSubtrees = %d, want 3", root.NumSubtrees())
	}
	for _, sub := range root.Subtrees() {
		if sub.Parent() != root {
			t.Errorf("%s: Parent should be root", sub.Name())
		}
	}
	assertSizesConsistent(t, root)
	assertValidColour(t, root.Colour())
}

func TestNewInternalIgnoresSuppliedSize(t *testing.T) {
	leaf := New("a", nil, 10)
	dir := New("dir", []*Tree{leaf}, 999)
	if dir.DataSize != 10 {
		t.Errorf("DataSize = %d, want 10 (supplied size discarded)", dir.DataSize)
	}
}

func TestNewEmptyTree(t *testing.T) {
	empty := New("", nil, 0)
	if !empty.IsEmpty() {
		t.Error("IsEmpty should be true")
	}
	if empty.NumSubtrees() != 0 || empty.Parent() != nil || empty.DataSize != 0 {
		t.Error("empty tree must have no subtrees, no parent, size 0")
	}
}

func TestNewEmptyWithSubtreesPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for empty name with subtrees, got none")
		}
	}()
	New("", []*Tree{New("a", nil, 1)}, 0)
}

func TestNewNegativeSizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for negative size, got none")
		}
	}()
	New("a", nil, -1)
}

func TestNewStartsCollapsed(t *testing.T) {
	root := buildWorkshop()
	var check func(*Tree)
	check = func(tr *Tree) {
		if tr.Expanded() {
			t.Errorf("%s: should start collapsed", tr.Name())
		}
		for _, sub := range tr.Subtrees() {
			check(sub)
		}
	}
	check(root)
}

func TestRoot(t *testing.T) {
	root := buildWorkshop()
	leaf := findNode(root, "Q3.pdf")
	if leaf == nil {
		t.Fatal("fixture leaf not found")
	}
	if leaf.Root() != root {
		t.Error("Root should walk back to the fixture root")
	}
	if root.Root() != root {
		t.Error("Root of the root should be itself")
	}
}
