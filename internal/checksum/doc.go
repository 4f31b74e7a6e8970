// Package checksum provides content digests of a virtual tree.
//
// A digest is the SHA-256 of a canonical pre-order listing:
//
//	d /
//	d /a
//	f /a/c.txt
//
// Children appear in name order, so two trees with the same shape always
// produce the same digest regardless of how they were built.
//
// # Example Usage
//
//	calculator := checksum.New()
//	whole := calculator.Tree(tree)
//	part := calculator.Subtree(tree, dir)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
