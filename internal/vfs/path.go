package vfs

import (
	"strings"

	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Path returns the absolute path of id, rebuilt from parent links.
// The root renders as "/"; no other path carries a trailing separator.
// A detached node renders relative to the top of its detached subtree.
func (t *Tree) Path(id NodeID) string {
	if id == t.Root() {
		return vfsim.RootName
	}

	var stack []string
	for cur := id; cur != NoParent; cur = t.nodes[cur].parent {
		stack = append(stack, t.nodes[cur].name)
	}

	var b strings.Builder
	for i := len(stack) - 1; i >= 0; i-- {
		name := stack[i]
		if name == vfsim.RootName {
			b.WriteString(vfsim.RootName)
			continue
		}
		b.WriteString(name)
		b.WriteString(vfsim.PathSeparator)
	}

	p := b.String()
	if len(p) > 1 {
		p = strings.TrimSuffix(p, vfsim.PathSeparator)
	}
	return p
}

// ChildPath joins a directory path and a child name without doubling the root separator.
func ChildPath(dirPath, name string) string {
	if dirPath == vfsim.RootName {
		return dirPath + name
	}
	return dirPath + vfsim.PathSeparator + name
}
