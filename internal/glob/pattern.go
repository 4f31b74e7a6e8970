// Package glob expands wildcard paths into the concrete paths that exist in a tree.
//
// A path segment containing "*" is a glob segment. Only one "*" per segment
// is supported; see Compile for the matching rules.
package glob

import "strings"

const wildcard = "*"

// HasGlob reports whether path contains a wildcard.
func HasGlob(path string) bool {
	return strings.Contains(path, wildcard)
}

// Pattern matches node names against a single glob segment.
type Pattern struct {
	raw    string
	prefix string
	suffix string
	valid  bool
}

// Compile builds a Pattern from one path segment:
//
//	*         every name
//	*suffix   names ending in suffix
//	prefix*   names starting with prefix
//	pre*post  names starting with pre and ending with post
//
// A segment with more than one "*" matches nothing. A segment without "*"
// matches only itself.
func Compile(segment string) Pattern {
	p := Pattern{raw: segment}
	switch strings.Count(segment, wildcard) {
	case 0:
		p.prefix = segment
		p.valid = true
	case 1:
		i := strings.Index(segment, wildcard)
		p.prefix = segment[:i]
		p.suffix = segment[i+1:]
		p.valid = true
	}
	return p
}

// String returns the segment the pattern was compiled from.
func (p Pattern) String() string { return p.raw }

// Literal reports whether the pattern has no wildcard.
func (p Pattern) Literal() bool { return !strings.Contains(p.raw, wildcard) }

// Match reports whether name satisfies the pattern.
func (p Pattern) Match(name string) bool {
	if !p.valid {
		return false
	}
	if p.Literal() {
		return name == p.raw
	}
	return len(name) >= len(p.prefix)+len(p.suffix) &&
		strings.HasPrefix(name, p.prefix) &&
		strings.HasSuffix(name, p.suffix)
}
