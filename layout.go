package treemap

import "math"

// UpdateRectangles assigns a rectangle to every node in this subtree using
// the slice-and-divide algorithm to fill the area defined by rect.
//
// An empty node, or any node whose DataSize is 0, gets the zero Rect. A
// leaf takes rect unchanged. An internal node splits rect along its longer
// side: each subtree except the last receives floor(size/total * length) of
// the split dimension in subtree order, and the last subtree receives the
// remainder so the tiling is exact despite floor rounding.
func (t *Tree) UpdateRectangles(rect Rect) {
	switch {
	case t.DataSize == 0 || t.IsEmpty():
		t.Rect = Rect{}
	case len(t.subtrees) == 0:
		t.Rect = rect
	default:
		t.Rect = rect
		if rect.Width > rect.Height {
			t.divideWidth(rect)
		} else {
			t.divideHeight(rect)
		}
	}
}

func (t *Tree) divideWidth(rect Rect) {
	position := 0
	for _, sub := range t.subtrees[:len(t.subtrees)-1] {
		share := float64(sub.DataSize) / float64(t.DataSize)
		w := int(math.Floor(share * float64(rect.Width)))
		sub.UpdateRectangles(Rect{
			X: rect.X + position, Y: rect.Y,
			Width: w, Height: rect.Height,
		})
		position += w
	}
	last := t.subtrees[len(t.subtrees)-1]
	last.UpdateRectangles(Rect{
		X: rect.X + position, Y: rect.Y,
		Width: rect.Width - position, Height: rect.Height,
	})
}

func (t *Tree) divideHeight(rect Rect) {
	position := 0
	for _, sub := range t.subtrees[:len(t.subtrees)-1] {
		share := float64(sub.DataSize) / float64(t.DataSize)
		h := int(math.Floor(share * float64(rect.Height)))
		sub.UpdateRectangles(Rect{
			X: rect.X, Y: rect.Y + position,
			Width: rect.Width, Height: h,
		})
		position += h
	}
	last := t.subtrees[len(t.subtrees)-1]
	last.UpdateRectangles(Rect{
		X: rect.X, Y: rect.Y + position,
		Width: rect.Width, Height: rect.Height - position,
	})
}

// GetRectangles returns the rectangle and colour of every visible leaf of
// the displayed tree rooted at this node, in subtree order. A node is a
// visible leaf if it is empty, a true leaf, or collapsed; a collapsed
// internal node is reported as a single opaque block. Only an expanded
// internal node recurses into its subtrees.
func (t *Tree) GetRectangles() []RectColor {
	if t.IsEmpty() || !t.expanded || len(t.subtrees) == 0 {
		return []RectColor{{Rect: t.Rect, Colour: t.colour}}
	}
	var out []RectColor
	for _, sub := range t.subtrees {
		out = append(out, sub.GetRectangles()...)
	}
	return out
}

// GetTreeAtPosition returns the visible leaf of the displayed tree rooted
// at this node whose rectangle contains (x, y), or nil if the point is
// outside this tree's rectangle. Rectangle edges are inclusive; when the
// point lies on an edge shared by several rectangles, the leftmost and
// then topmost rectangle wins.
func (t *Tree) GetTreeAtPosition(x, y int) *Tree {
	if t.IsEmpty() {
		return nil
	}
	if len(t.subtrees) == 0 || !t.expanded {
		if t.Rect.Contains(x, y) {
			return t
		}
		return nil
	}
	if !t.Rect.Contains(x, y) {
		return nil
	}
	var hit *Tree
	for _, sub := range t.subtrees {
		found := sub.GetTreeAtPosition(x, y)
		if found == nil {
			continue
		}
		if hit == nil ||
			found.Rect.X < hit.Rect.X ||
			(found.Rect.X == hit.Rect.X && found.Rect.Y < hit.Rect.Y) {
			hit = found
		}
	}
	return hit
}
