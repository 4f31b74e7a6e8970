// Package vfs implements the in-memory node tree of the simulator.
//
// Nodes live in an arena owned by Tree and are addressed by NodeID handles.
// Each node stores the handle of its parent; a directory stores its children
// as handles sorted by name. Handles are never reused, so a handle to a
// removed node stays dead instead of silently pointing at a new node.
//
// Key operations:
//   - NewDir / NewFile: allocate detached nodes
//   - Add / Remove: attach and detach children (directories only)
//   - Lookup / Find / Children: name-ordered child access
//   - Path: absolute path reconstructed from parent links
//   - Clone: deep copy of a subtree with an old-to-new handle mapping
//   - Detach: remove a node from its parent and free its subtree
//
// Tree is not safe for concurrent use; callers serialize access (see shell.Session).
package vfs
