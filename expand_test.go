package treemap

import "testing"

func assertAllCollapsed(t *testing.T, tr *Tree) {
	t.Helper()
	if tr.Expanded() {
		t.Errorf("%s: expanded, want collapsed", tr.Name())
	}
	for _, sub := range tr.Subtrees() {
		assertAllCollapsed(t, sub)
	}
}

func TestExpandLeafNoOp(t *testing.T) {
	leaf := New("a", nil, 1)
	leaf.Expand()
	if leaf.Expanded() {
		t.Error("leaf should never expand")
	}
}

func TestExpandInternal(t *testing.T) {
	root := buildWorkshop()
	root.Expand()
	if !root.Expanded() {
		t.Error("root should be expanded")
	}
	for _, sub := range root.Subtrees() {
		if sub.Expanded() {
			t.Errorf("%s: Expand must not touch subtrees", sub.Name())
		}
	}
}

func TestExpandAll(t *testing.T) {
	root := buildWorkshop()
	root.ExpandAll()
	var check func(*Tree)
	check = func(tr *Tree) {
		if tr.NumSubtrees() > 0 && !tr.Expanded() {
			t.Errorf("%s: internal node should be expanded", tr.Name())
		}
		if tr.NumSubtrees() == 0 && tr.Expanded() {
			t.Errorf("%s: leaf should stay collapsed", tr.Name())
		}
		for _, sub := range tr.Subtrees() {
			check(sub)
		}
	}
	check(root)
}

func TestExpandAllThenCollapseAll(t *testing.T) {
	root := buildWorkshop()
	root.ExpandAll()
	// CollapseAll from any node reaches the root via parent links.
	findNode(root, "Cats.pdf").CollapseAll()
	assertAllCollapsed(t, root)
}

func TestCollapseCascadesThroughParentAndSiblings(t *testing.T) {
	root := buildWorkshop()
	root.ExpandAll()

	// Collapsing one grandchild folds its parent and every sibling
	// subtree of that parent in one call.
	activities := findNode(root, "activities")
	activities.Subtrees()[1].Collapse() // activities/images

	if activities.Expanded() {
		t.Error("parent of the collapsed node should collapse too")
	}
	assertAllCollapsed(t, activities)

	// The sibling cascade is scoped to the collapsed node's parent: the
	// root and the other top-level subtrees keep their state.
	if !root.Expanded() {
		t.Error("root should stay expanded")
	}
	if prep := findNode(root, "prep"); !prep.Expanded() {
		t.Error("prep should stay expanded")
	}
}

func TestCollapseOnCollapsedParentStopsCascade(t *testing.T) {
	root := buildWorkshop()
	prep := findNode(root, "prep")
	prep.Expand() // parent (root) stays collapsed

	prepImages := prep.Subtrees()[0]
	prepImages.Collapse()

	if prep.Expanded() {
		t.Error("expanded parent of the collapsed node should fold")
	}
	// Root was already collapsed, so nothing above prep changes and other
	// subtrees of the root are untouched.
	if root.Expanded() {
		t.Error("root should remain collapsed")
	}
}

func TestCollapseRecursesIntoOwnSubtrees(t *testing.T) {
	root := buildWorkshop()
	activities := findNode(root, "activities")
	activities.ExpandAll() // activities and its images, root still collapsed

	activities.Collapse()
	assertAllCollapsed(t, activities)
}
