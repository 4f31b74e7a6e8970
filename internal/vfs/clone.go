package vfs

// Clone deep-copies the subtree rooted at id into fresh, detached nodes.
// It returns the handle of the copy and a mapping from every original handle
// in the subtree to its counterpart, so callers can follow a node into the copy.
// The copy shares nothing with the original.
func (t *Tree) Clone(id NodeID) (NodeID, map[NodeID]NodeID) {
	mapping := make(map[NodeID]NodeID)
	return t.cloneInto(id, mapping), mapping
}

func (t *Tree) cloneInto(id NodeID, mapping map[NodeID]NodeID) NodeID {
	src := t.nodes[id]
	copyID := t.alloc(src.name, src.kind)
	mapping[id] = copyID

	if src.kind == Directory {
		// Source children are already sorted and unique, so the copy's
		// child slice can be built directly.
		children := make([]NodeID, 0, len(src.children))
		for _, child := range src.children {
			c := t.cloneInto(child, mapping)
			t.nodes[c].parent = copyID
			children = append(children, c)
		}
		t.nodes[copyID].children = children
	}
	return copyID
}
