package shell

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Filter is the grep stage of "ls | grep pattern".
type Filter struct {
	pattern string
	re      *regexp.Regexp
}

// CompileFilter strips every double quote from pattern and compiles the
// remainder as a regular expression that must match a whole name.
func CompileFilter(pattern string) (*Filter, error) {
	pattern = strings.ReplaceAll(pattern, `"`, "")
	// the bare pattern must compile on its own so it cannot close the anchoring group
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", keywordGrep, pattern, ErrInvalidPattern)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", keywordGrep, pattern, ErrInvalidPattern)
	}
	return &Filter{pattern: pattern, re: re}, nil
}

// Pattern returns the pattern with quotes removed.
func (f *Filter) Pattern() string { return f.pattern }

// Match reports whether the last segment of candidate, trimmed of
// surrounding whitespace, matches the whole pattern.
func (f *Filter) Match(candidate string) bool {
	if i := strings.LastIndex(candidate, vfsim.PathSeparator); i >= 0 {
		candidate = candidate[i+1:]
	}
	return f.re.MatchString(strings.TrimSpace(candidate))
}
