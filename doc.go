// Package treemap maintains a weighted hierarchical tree and computes a
// space-filling rectangular layout from it, for treemap visualisers built
// on [Ebitengine] or any other renderer.
//
// The core is renderer-agnostic: it owns the tree model, the recursive
// slice-and-divide layout, depth-based greyscale shading of internal
// nodes, expansion state, and the structural edit operations (move, copy,
// delete, duplicate). Rendering and input handling belong to callers; see
// examples/viewer for an interactive Ebitengine front end.
//
// # Building a tree
//
// Trees are built bottom-up, leaves before the internal nodes that hold
// them, usually by an adapter over some external hierarchy. The fstree
// subpackage walks a file system:
//
//	root, err := fstree.New("/home/me/projects")
//	if err != nil {
//		log.Fatal(err)
//	}
//	root.UpdateColoursAndDepths()
//	root.UpdateRectangles(treemap.Rect{Width: 1024, Height: 768})
//
// In-memory trees use [New] directly:
//
//	a := treemap.New("a.txt", nil, 40)
//	b := treemap.New("b.txt", nil, 10)
//	docs := treemap.New("docs", []*treemap.Tree{a, b}, 0)
//
// # Layout and display
//
// [Tree.UpdateRectangles] partitions an integer rectangle among the
// subtree proportionally to size, splitting along the longer side at each
// level. [Tree.GetRectangles] then yields the rectangle and colour of
// every visible leaf of the displayed tree: collapsed internal nodes are
// reported as single opaque blocks. [Tree.GetTreeAtPosition] maps a pixel
// back to the visible node under it, which is all a renderer needs for
// mouse interaction.
//
// # Mutation contract
//
// The tree has a single-owner mutation model: one caller mutates a given
// tree at a time, and there is no internal locking. Several mutations
// ([Tree.Move], [Tree.DeleteSelf], [Tree.ChangeSize]) deliberately leave
// ancestor size aggregates stale; call [Tree.UpdateDataSizes] on the root
// afterwards to re-establish them. Structurally invalid requests (moving
// an internal node, resizing a folder) are silent no-ops. Panics are
// reserved for programming errors, such as querying the path separator of
// a node whose adapter never attached a [Source].
//
// [Ebitengine]: https://ebitengine.org
package treemap
