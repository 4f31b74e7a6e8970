package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/vvka-141/vfsim/internal/vfs"
)

// Calculator computes content digests of a tree.
type Calculator interface {
	// Tree digests the whole tree, paths rendered from the root.
	Tree(tree *vfs.Tree) string

	// Subtree digests the nodes under start with paths relative to it,
	// so equal shapes at different locations produce equal digests.
	Subtree(tree *vfs.Tree, start vfs.NodeID) string
}

// SHA256 implements Calculator using SHA-256 over the canonical listing.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines as long as the tree is not mutated meanwhile.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Tree computes the digest of every live node reachable from the root.
func (c SHA256) Tree(tree *vfs.Tree) string {
	return c.sum(Listing(tree, tree.Root(), false))
}

// Subtree computes the digest of start and its descendants.
func (c SHA256) Subtree(tree *vfs.Tree, start vfs.NodeID) string {
	return c.sum(Listing(tree, start, true))
}

func (c SHA256) sum(listing string) string {
	hash := sha256.Sum256([]byte(listing))
	return hex.EncodeToString(hash[:])
}

// Listing renders one line per node in pre-order: "d <path>" for
// directories and "f <path>" for files. With relative set, paths are
// rendered below start, which itself becomes ".".
func Listing(tree *vfs.Tree, start vfs.NodeID, relative bool) string {
	var b strings.Builder
	base := tree.Path(start)

	tree.Walk(start, func(id vfs.NodeID) {
		p := tree.Path(id)
		if relative {
			p = relativeTo(base, p)
		}
		if tree.IsDir(id) {
			b.WriteString("d ")
		} else {
			b.WriteString("f ")
		}
		b.WriteString(p)
		b.WriteByte('\n')
	})
	return b.String()
}

func relativeTo(base, p string) string {
	if p == base {
		return "."
	}
	if base == "/" {
		return p[1:]
	}
	return strings.TrimPrefix(p, base+"/")
}
