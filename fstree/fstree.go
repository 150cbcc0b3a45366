// Package fstree builds treemap trees from a file system hierarchy.
//
// Internal nodes represent directories and leaves represent regular files;
// a leaf's data size is the file's length in bytes. Each node stores only
// its base name; the full path lives in the attached [treemap.Source], so
// [treemap.Tree.PathString] and [treemap.Tree.FullPath] work everywhere in
// the tree.
//
// Construction performs blocking I/O proportional to the size of the
// hierarchy. Callers building a tree over a very large directory impose
// their own bounds; the walk itself does not.
package fstree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phanxgames/treemap"
)

// New walks the file system at path and returns the resulting tree. A
// regular file becomes a leaf sized by its byte length; a directory
// becomes an internal node over its entries in directory order (OS
// dependent; the core preserves whatever order it is given).
func New(path string) (*treemap.Tree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fstree: stat %s: %w", path, err)
	}

	name := filepath.Base(path)
	var t *treemap.Tree
	if !info.IsDir() {
		size := info.Size()
		if size < 0 {
			size = 0
		}
		t = treemap.New(name, nil, int(size))
	} else {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("fstree: read dir %s: %w", path, err)
		}
		subtrees := make([]*treemap.Tree, 0, len(entries))
		for _, entry := range entries {
			sub, err := New(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			subtrees = append(subtrees, sub)
		}
		t = treemap.New(name, subtrees, 0)
	}
	t.SetSource(fileSource{path: path})
	return t, nil
}

// fileSource ties a node to the path it was built from.
type fileSource struct {
	path string
}

func (s fileSource) Rebuild() (*treemap.Tree, error) {
	return New(s.path)
}

func (s fileSource) Separator() string {
	return string(filepath.Separator)
}

// Suffix describes a node as " (file, <size>)" for a leaf or
// " (folder, <N> items, <size>)" for a directory.
func (s fileSource) Suffix(t *treemap.Tree) string {
	if t.NumSubtrees() == 0 {
		return fmt.Sprintf(" (file, %s)", formatSize(float64(t.DataSize)))
	}
	return fmt.Sprintf(" (folder, %d items, %s)",
		t.NumSubtrees(), formatSize(float64(t.DataSize)))
}

func (s fileSource) FullPath() string {
	return s.path
}

// formatSize renders a byte count with two decimal places, dividing by
// 1024 through B, kB, MB, GB, and TB. Values of a terabyte and beyond stay
// in TB regardless of magnitude.
func formatSize(size float64) string {
	units := []string{"B", "kB", "MB", "GB", "TB"}
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.2f%s", size, units[i])
}
