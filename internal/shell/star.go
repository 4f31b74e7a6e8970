package shell

import (
	"github.com/vvka-141/vfsim/internal/resolver"
	"github.com/vvka-141/vfsim/internal/vfs"
)

// starCommand expands a wildcard path and runs the plain command once per
// match with "not found" reporting turned off.
type starCommand struct {
	inv     Invocation
	pattern string // the expanded part of the path
	leaf    string // kept literally for touch and mkdir
	matches []string
}

func (s *Session) newStar(inv Invocation) *starCommand {
	c := &starCommand{inv: inv, pattern: inv.Path()}

	if inv.Keyword == KeywordTouch || inv.Keyword == KeywordMkdir {
		c.pattern, c.leaf = resolver.SplitLeaf(inv.Path())
	}

	if c.pattern == "" {
		c.matches = []string{s.tree.Path(s.cwd)}
	} else {
		c.matches = s.expander.Expand(c.pattern, s.cwd)
	}
	s.logger.Verbose("%s %s expanded to %d path(s)", inv.Keyword, c.pattern, len(c.matches))
	return c
}

func (c *starCommand) Name() string { return c.inv.Keyword }

func (c *starCommand) Execute(s *Session) {
	if len(c.matches) == 0 {
		c.reportNoMatch(s)
		return
	}

	for _, match := range c.matches {
		sub := Invocation{Keyword: c.inv.Keyword, Args: []string{match}, Recursive: c.inv.Recursive}
		if c.leaf != "" {
			sub.Args[0] = vfs.ChildPath(match, c.leaf)
		}
		s.run(sub, false)
	}
}

func (c *starCommand) reportNoMatch(s *Session) {
	switch c.inv.Keyword {
	case KeywordLs:
		s.errorf("ls: %s: %s", c.inv.Path(), reasonNoDirectory)
	case KeywordRm:
		s.errorf("rm: cannot remove %s: %s", c.inv.Path(), reasonNoNode)
	default:
		s.errorf("%s: %s: %s", c.inv.Keyword, parentDisplay(c.inv.Path()), reasonNoDirectory)
	}
}
