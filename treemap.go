package treemap

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward. The zero Rect marks a
// node that is not laid out (empty, or size 0).
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside, so rectangles that share an
// edge both contain the points along it.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGB colour with channels in [0, 255]. Leaves carry a
// random non-greyscale colour assigned at construction; internal nodes are
// repainted in greyscale by [Tree.UpdateColoursAndDepths].
type Color struct {
	R, G, B uint8
}

// RectColor pairs a laid-out rectangle with the colour to fill it with.
// This is the unit of display output produced by [Tree.GetRectangles].
type RectColor struct {
	Rect   Rect
	Colour Color
}
