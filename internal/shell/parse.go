package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vfsim/internal/glob"
)

// Command keywords.
const (
	KeywordLs    = "ls"
	KeywordPwd   = "pwd"
	KeywordCd    = "cd"
	KeywordCp    = "cp"
	KeywordMv    = "mv"
	KeywordRm    = "rm"
	KeywordTouch = "touch"
	KeywordMkdir = "mkdir"

	keywordGrep   = "grep"
	flagRecursive = "-R"
	pipe          = "|"
)

// operands is the number of path arguments each keyword requires.
var operands = map[string]int{
	KeywordLs:    0,
	KeywordPwd:   0,
	KeywordCd:    1,
	KeywordCp:    2,
	KeywordMv:    2,
	KeywordRm:    1,
	KeywordTouch: 1,
	KeywordMkdir: 1,
}

// starKeywords have a wildcard-expanding variant.
var starKeywords = map[string]bool{
	KeywordLs:    true,
	KeywordRm:    true,
	KeywordTouch: true,
	KeywordMkdir: true,
}

// Invocation is a parsed command line.
type Invocation struct {
	Keyword   string
	Args      []string
	Recursive bool   // ls -R
	Grep      bool   // ls piped into grep
	Pattern   string // grep pattern, quotes not yet stripped
	Star      bool   // path argument is expanded before running
}

// Path returns the first argument, or "" when there is none.
func (inv Invocation) Path() string {
	if len(inv.Args) == 0 {
		return ""
	}
	return inv.Args[0]
}

// Parse classifies and splits one command line. A blank line yields an
// Invocation with an empty Keyword and no error.
func Parse(line string) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, nil
	}

	keyword := fields[0]
	want, known := operands[keyword]
	if !known {
		return Invocation{}, fmt.Errorf("%s: %w", keyword, ErrUnknownCommand)
	}

	inv := Invocation{Keyword: keyword}
	if keyword == KeywordLs {
		if err := parseList(&inv, strings.TrimSpace(line)[len(keyword):]); err != nil {
			return Invocation{}, err
		}
	} else {
		if len(fields)-1 < want {
			return Invocation{}, fmt.Errorf("%s: %w", keyword, ErrMissingOperand)
		}
		inv.Args = fields[1 : 1+want]
	}

	// A grep pattern may legitimately contain "*"; it never triggers expansion.
	inv.Star = starKeywords[keyword] && !inv.Grep && glob.HasGlob(line)
	return inv, nil
}

// parseList handles "[-R] [path] [| grep pattern]".
func parseList(inv *Invocation, rest string) error {
	left, right, piped := strings.Cut(rest, pipe)

	for _, arg := range strings.Fields(left) {
		if arg == flagRecursive {
			inv.Recursive = true
			continue
		}
		inv.Args = []string{arg}
	}

	if !piped {
		return nil
	}
	inv.Grep = true
	grepFields := strings.Fields(right)
	if len(grepFields) > 0 && grepFields[0] != keywordGrep {
		return fmt.Errorf("%s: %w", grepFields[0], ErrUnknownCommand)
	}
	if len(grepFields) < 2 {
		return fmt.Errorf("%s: %w", keywordGrep, ErrMissingOperand)
	}
	// everything after the grep keyword is the pattern
	_, pattern, _ := strings.Cut(strings.TrimSpace(right), grepFields[0])
	inv.Pattern = strings.TrimSpace(pattern)
	return nil
}
