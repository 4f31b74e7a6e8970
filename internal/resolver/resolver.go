// Package resolver turns textual paths into node handles.
//
// Resolution has two stages. Tokenize makes a path absolute against the
// current directory and folds "." and ".." into a list of name components.
// Lookup walks those components down from the root.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/vfsim/internal/vfs"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

var (
	// ErrNotFound indicates that no node of the requested kind exists at the path.
	ErrNotFound = errors.New("no such file or directory")

	// ErrAboveRoot indicates a ".." applied to the root directory.
	ErrAboveRoot = errors.New("path escapes the root directory")
)

// Kind selects which nodes may satisfy the final path component.
type Kind int

const (
	KindAny Kind = iota
	KindDir
	KindFile
)

func (k Kind) accepts(tree *vfs.Tree, id vfs.NodeID) bool {
	switch k {
	case KindDir:
		return tree.IsDir(id)
	case KindFile:
		return !tree.IsDir(id)
	default:
		return true
	}
}

// Resolver resolves paths against a tree.
type Resolver struct {
	tree *vfs.Tree
}

// New creates a resolver over tree.
func New(tree *vfs.Tree) *Resolver {
	return &Resolver{tree: tree}
}

// Split breaks a path into its non-empty components, ignoring separators.
func Split(path string) []string {
	var parts []string
	for _, seg := range strings.Split(path, vfsim.PathSeparator) {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}

// Absolute prefixes a relative path with the path of cwd.
func (r *Resolver) Absolute(path string, cwd vfs.NodeID) string {
	if strings.HasPrefix(path, vfsim.PathSeparator) {
		return path
	}
	return vfs.ChildPath(r.tree.Path(cwd), path)
}

// Tokenize converts path into root-relative name components.
// "." is dropped; ".." replaces the components gathered so far with those of
// the parent of the directory they denote. It fails when that directory does
// not exist or is the root.
func (r *Resolver) Tokenize(path string, cwd vfs.NodeID) ([]string, error) {
	abs := r.Absolute(path, cwd)

	components := []string{}
	for _, seg := range Split(abs) {
		switch seg {
		case ".":
			continue
		case "..":
			dir, err := r.Lookup(components, KindDir)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if dir == r.tree.Root() {
				return nil, fmt.Errorf("%s: %w", path, ErrAboveRoot)
			}
			components = append([]string{}, Split(r.tree.Path(r.tree.Parent(dir)))...)
		default:
			components = append(components, seg)
		}
	}
	return components, nil
}

// Lookup walks components down from the root. Every intermediate component
// must name a directory; the last one must satisfy kind. An empty component
// list denotes the root itself.
func (r *Resolver) Lookup(components []string, kind Kind) (vfs.NodeID, error) {
	cur := r.tree.Root()
	for i, name := range components {
		next, ok := r.tree.Lookup(cur, name)
		if !ok {
			return vfs.NoParent, ErrNotFound
		}
		if i < len(components)-1 && !r.tree.IsDir(next) {
			return vfs.NoParent, ErrNotFound
		}
		cur = next
	}
	if !kind.accepts(r.tree, cur) {
		return vfs.NoParent, ErrNotFound
	}
	return cur, nil
}

// Resolve finds the node of the requested kind at path.
// The empty path denotes cwd and skips resolution.
func (r *Resolver) Resolve(path string, kind Kind, cwd vfs.NodeID) (vfs.NodeID, error) {
	if path == "" {
		if !kind.accepts(r.tree, cwd) {
			return vfs.NoParent, ErrNotFound
		}
		return cwd, nil
	}

	components, err := r.Tokenize(path, cwd)
	if err != nil {
		return vfs.NoParent, err
	}
	id, err := r.Lookup(components, kind)
	if err != nil {
		return vfs.NoParent, fmt.Errorf("%s: %w", path, err)
	}
	return id, nil
}

// ResolveParent resolves everything but the last component of path to a
// directory and returns it with the leaf name. Paths that fold to the root
// have no leaf and fail with ErrNotFound.
func (r *Resolver) ResolveParent(path string, cwd vfs.NodeID) (vfs.NodeID, string, error) {
	components, err := r.Tokenize(path, cwd)
	if err != nil {
		return vfs.NoParent, "", err
	}
	if len(components) == 0 {
		return vfs.NoParent, "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	leaf := components[len(components)-1]
	dir, err := r.Lookup(components[:len(components)-1], KindDir)
	if err != nil {
		return vfs.NoParent, leaf, fmt.Errorf("%s: %w", path, err)
	}
	return dir, leaf, nil
}

// SplitLeaf splits a raw path into its parent part and last segment.
// Trailing separators are ignored. A path without a separator has an empty
// parent, meaning the current directory.
func SplitLeaf(path string) (parent, leaf string) {
	trimmed := strings.TrimRight(path, vfsim.PathSeparator)
	if trimmed == "" && path != "" {
		return vfsim.RootName, ""
	}

	i := strings.LastIndex(trimmed, vfsim.PathSeparator)
	switch {
	case i < 0:
		return "", trimmed
	case i == 0:
		return vfsim.RootName, trimmed[1:]
	default:
		return trimmed[:i], trimmed[i+1:]
	}
}
