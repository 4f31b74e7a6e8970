// Package logging provides concrete implementations of the vfsim.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to stderr or any io.Writer
//   - NullLogger: discards all messages
//   - RecordingLogger: keeps messages in memory for assertions
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
