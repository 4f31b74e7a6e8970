// Package vfsim holds the public contracts of the vfsim namespace simulator:
// the Logger interface, process-level sentinel errors and exit codes.
//
// The simulator itself lives under internal/: vfs (node arena), resolver
// (path resolution), glob (wildcard expansion) and shell (command engine).
package vfsim
