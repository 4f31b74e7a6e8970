package vfs

import (
	"errors"
	"slices"
	"sort"

	"github.com/vvka-141/vfsim/pkg/vfsim"
)

var (
	// ErrUnsupported is returned when a directory-only operation is invoked on a file.
	ErrUnsupported = errors.New("operation not supported on file")

	// ErrExists is returned when a directory already holds a child with the same name.
	ErrExists = errors.New("node exists")

	// ErrNotChild is returned by Remove when the node is not a child of the directory.
	ErrNotChild = errors.New("node is not a child of directory")

	// ErrAttached is returned by Add when the node already has a parent.
	ErrAttached = errors.New("node already attached")

	// ErrRoot is returned when an operation would detach the root.
	ErrRoot = errors.New("operation not permitted on root")

	// ErrDead is returned when a handle refers to a freed node.
	ErrDead = errors.New("node no longer exists")
)

// NodeID is a stable handle to a node in a Tree.
type NodeID int

// NoParent is the parent of the root and of detached nodes.
const NoParent NodeID = -1

// Kind distinguishes directories from files.
type Kind int

const (
	Directory Kind = iota
	File
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

type node struct {
	name     string
	kind     Kind
	parent   NodeID
	children []NodeID // sorted by name; nil for files
	live     bool
}

// Tree is an arena of nodes rooted at a directory named "/".
type Tree struct {
	nodes []node
	live  int
}

// New creates a tree holding only the root directory.
func New() *Tree {
	t := &Tree{}
	t.alloc(vfsim.RootName, Directory)
	return t
}

func (t *Tree) alloc(name string, kind Kind) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		name:   name,
		kind:   kind,
		parent: NoParent,
		live:   true,
	})
	t.live++
	return id
}

// Root returns the handle of the root directory.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of live nodes, attached or not.
func (t *Tree) Len() int { return t.live }

// NewDir allocates a detached, empty directory.
func (t *Tree) NewDir(name string) NodeID { return t.alloc(name, Directory) }

// NewFile allocates a detached file.
func (t *Tree) NewFile(name string) NodeID { return t.alloc(name, File) }

// IsLive reports whether id refers to an allocated node that has not been freed.
func (t *Tree) IsLive(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].live
}

func (t *Tree) Name(id NodeID) string { return t.nodes[id].name }

func (t *Tree) Kind(id NodeID) Kind { return t.nodes[id].kind }

func (t *Tree) IsDir(id NodeID) bool { return t.nodes[id].kind == Directory }

func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Children returns the children of id in name order.
// Files have no children and yield an empty sequence.
func (t *Tree) Children(id NodeID) []NodeID {
	return slices.Clone(t.nodes[id].children)
}

// index returns the position of name in dir's children and whether it is present.
func (t *Tree) index(dir NodeID, name string) (int, bool) {
	children := t.nodes[dir].children
	i := sort.Search(len(children), func(i int) bool {
		return t.nodes[children[i]].name >= name
	})
	return i, i < len(children) && t.nodes[children[i]].name == name
}

// Lookup returns the child of dir with the given name.
func (t *Tree) Lookup(dir NodeID, name string) (NodeID, bool) {
	if t.nodes[dir].kind != Directory {
		return NoParent, false
	}
	i, ok := t.index(dir, name)
	if !ok {
		return NoParent, false
	}
	return t.nodes[dir].children[i], true
}

// Find reports whether dir has a child with exactly the given name.
// It is always false for a file.
func (t *Tree) Find(dir NodeID, name string) bool {
	_, ok := t.Lookup(dir, name)
	return ok
}

// Add attaches a detached node as a child of dir.
func (t *Tree) Add(dir, child NodeID) error {
	if !t.IsLive(dir) || !t.IsLive(child) {
		return ErrDead
	}
	if t.nodes[dir].kind != Directory {
		return ErrUnsupported
	}
	if t.nodes[child].parent != NoParent || child == t.Root() {
		return ErrAttached
	}
	i, exists := t.index(dir, t.nodes[child].name)
	if exists {
		return ErrExists
	}

	t.nodes[dir].children = slices.Insert(t.nodes[dir].children, i, child)
	t.nodes[child].parent = dir
	return nil
}

// Remove detaches child from dir. The child and its subtree stay allocated
// and may be re-added elsewhere.
func (t *Tree) Remove(dir, child NodeID) error {
	if !t.IsLive(dir) || !t.IsLive(child) {
		return ErrDead
	}
	if t.nodes[dir].kind != Directory {
		return ErrUnsupported
	}
	if t.nodes[child].parent != dir {
		return ErrNotChild
	}
	i, ok := t.index(dir, t.nodes[child].name)
	if !ok {
		return ErrNotChild
	}

	t.nodes[dir].children = slices.Delete(t.nodes[dir].children, i, i+1)
	t.nodes[child].parent = NoParent
	return nil
}

// Detach removes id from its parent and frees id and every descendant.
func (t *Tree) Detach(id NodeID) error {
	if id == t.Root() {
		return ErrRoot
	}
	if !t.IsLive(id) {
		return ErrDead
	}
	if parent := t.nodes[id].parent; parent != NoParent {
		if err := t.Remove(parent, id); err != nil {
			return err
		}
	}
	t.free(id)
	return nil
}

func (t *Tree) free(id NodeID) {
	for _, child := range t.nodes[id].children {
		t.free(child)
	}
	t.nodes[id] = node{name: t.nodes[id].name, kind: t.nodes[id].kind, parent: NoParent}
	t.live--
}

// IsAncestorOrSelf reports whether a equals b or lies on b's parent chain.
func (t *Tree) IsAncestorOrSelf(a, b NodeID) bool {
	for cur := b; cur != NoParent; cur = t.nodes[cur].parent {
		if cur == a {
			return true
		}
	}
	return false
}

// Walk visits start and its descendants in pre-order, children in name order.
func (t *Tree) Walk(start NodeID, fn func(id NodeID)) {
	fn(start)
	for _, child := range t.nodes[start].children {
		t.Walk(child, fn)
	}
}
