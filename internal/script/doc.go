// Package script runs command scripts through a shell session in batch.
//
// Every line read, blank ones included, first writes its 1-based index to
// both sinks and is then executed. Output written through a TrimWriter never
// carries trailing whitespace.
package script
