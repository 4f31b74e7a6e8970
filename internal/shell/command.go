package shell

import (
	"github.com/vvka-141/vfsim/internal/resolver"
	"github.com/vvka-141/vfsim/internal/vfs"
)

// Command is a parsed line bound to its resolved targets.
// Resolution happens when the command is built; Execute only produces
// output and mutates the tree.
type Command interface {
	Name() string
	Execute(s *Session)
}

// build maps an invocation onto its command variant.
func (s *Session) build(inv Invocation, report bool) (Command, error) {
	if inv.Star {
		return s.newStar(inv), nil
	}

	switch inv.Keyword {
	case KeywordLs:
		c, err := s.newList(inv, report)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KeywordPwd:
		return pwdCommand{}, nil
	case KeywordCd:
		return s.newCd(inv), nil
	case KeywordCp:
		return s.newTransfer(inv, false), nil
	case KeywordMv:
		return s.newTransfer(inv, true), nil
	case KeywordRm:
		return s.newRemove(inv, report), nil
	case KeywordTouch:
		return s.newCreate(inv, vfs.File, report), nil
	case KeywordMkdir:
		return s.newCreate(inv, vfs.Directory, report), nil
	default:
		return nil, ErrUnknownCommand
	}
}

type pwdCommand struct{}

func (pwdCommand) Name() string { return KeywordPwd }

func (pwdCommand) Execute(s *Session) {
	s.outputLine(s.tree.Path(s.cwd))
}

type cdCommand struct {
	path  string
	dir   vfs.NodeID
	found bool
}

func (s *Session) newCd(inv Invocation) *cdCommand {
	c := &cdCommand{path: inv.Path()}
	dir, err := s.resolver.Resolve(c.path, resolver.KindDir, s.cwd)
	c.dir, c.found = dir, err == nil
	return c
}

func (c *cdCommand) Name() string { return KeywordCd }

func (c *cdCommand) Execute(s *Session) {
	if !c.found {
		s.errorf("cd: %s: %s", c.path, reasonNoDirectory)
		return
	}
	s.cwd = c.dir
}

type removeCommand struct {
	path   string
	node   vfs.NodeID
	found  bool
	report bool
}

func (s *Session) newRemove(inv Invocation, report bool) *removeCommand {
	c := &removeCommand{path: inv.Path(), report: report}
	node, err := s.resolver.Resolve(c.path, resolver.KindAny, s.cwd)
	c.node, c.found = node, err == nil
	return c
}

func (c *removeCommand) Name() string { return KeywordRm }

func (c *removeCommand) Execute(s *Session) {
	if !c.found {
		if c.report {
			s.errorf("rm: cannot remove %s: %s", c.path, reasonNoNode)
		}
		return
	}
	if s.tree.IsAncestorOrSelf(c.node, s.cwd) {
		s.logger.Verbose("rm %s skipped: contains current directory %s", s.tree.Path(c.node), s.tree.Path(s.cwd))
		return
	}
	if err := s.tree.Detach(c.node); err != nil {
		s.logger.Error("rm %s: %v", c.path, err)
	}
}

// createCommand implements touch and mkdir.
type createCommand struct {
	kind   vfs.Kind
	path   string
	dir    vfs.NodeID
	leaf   string
	found  bool
	report bool
}

func (s *Session) newCreate(inv Invocation, kind vfs.Kind, report bool) *createCommand {
	c := &createCommand{kind: kind, path: inv.Path(), report: report}
	dir, leaf, err := s.resolver.ResolveParent(c.path, s.cwd)
	c.dir, c.leaf, c.found = dir, leaf, err == nil
	return c
}

func (c *createCommand) Name() string {
	if c.kind == vfs.Directory {
		return KeywordMkdir
	}
	return KeywordTouch
}

func (c *createCommand) Execute(s *Session) {
	if !c.found {
		if c.report {
			s.errorf("%s: %s: %s", c.Name(), parentDisplay(c.path), reasonNoDirectory)
		}
		return
	}

	if s.tree.Find(c.dir, c.leaf) {
		noun := "file"
		if c.kind == vfs.Directory {
			noun = "directory"
		}
		s.errorf("%s: cannot create %s %s: %s", c.Name(), noun, vfs.ChildPath(s.tree.Path(c.dir), c.leaf), reasonExists)
		return
	}

	var node vfs.NodeID
	if c.kind == vfs.Directory {
		node = s.tree.NewDir(c.leaf)
	} else {
		node = s.tree.NewFile(c.leaf)
	}
	if err := s.tree.Add(c.dir, node); err != nil {
		s.logger.Error("%s %s: %v", c.Name(), c.path, err)
	}
}

// parentDisplay drops the last "/segment" of a raw path for error messages.
func parentDisplay(path string) string {
	parent, _ := resolver.SplitLeaf(path)
	if parent == "" {
		return path
	}
	return parent
}

// transferCommand implements cp and mv.
type transferCommand struct {
	move     bool
	src, dst string
	node     vfs.NodeID
	dir      vfs.NodeID
	srcFound bool
	dstFound bool
}

func (s *Session) newTransfer(inv Invocation, move bool) *transferCommand {
	c := &transferCommand{move: move, src: inv.Args[0], dst: inv.Args[1]}
	dir, err := s.resolver.Resolve(c.dst, resolver.KindDir, s.cwd)
	c.dir, c.dstFound = dir, err == nil
	node, err := s.resolver.Resolve(c.src, resolver.KindAny, s.cwd)
	c.node, c.srcFound = node, err == nil
	return c
}

func (c *transferCommand) Name() string {
	if c.move {
		return KeywordMv
	}
	return KeywordCp
}

func (c *transferCommand) Execute(s *Session) {
	verb := "copy"
	if c.move {
		verb = "move"
	}

	switch {
	case !c.srcFound:
		s.errorf("%s: cannot %s %s: %s", c.Name(), verb, c.src, reasonNoNode)
		return
	case !c.dstFound:
		s.errorf("%s: cannot %s into %s: %s", c.Name(), verb, c.dst, reasonNoDirectory)
		return
	case c.node == s.tree.Root():
		s.errorf("%s: cannot %s %s: %s", c.Name(), verb, c.src, reasonRoot)
		return
	case c.move && s.tree.IsAncestorOrSelf(c.node, c.dir):
		s.errorf("%s: cannot %s %s: %s", c.Name(), verb, c.src, reasonIntoSelf)
		return
	case s.tree.Find(c.dir, s.tree.Name(c.node)):
		s.errorf("%s: cannot %s %s: %s", c.Name(), verb, c.src, reasonExistsAtDst)
		return
	}

	copyID, mapping := s.tree.Clone(c.node)
	if c.move {
		followCwd := s.tree.IsAncestorOrSelf(c.node, s.cwd)
		if err := s.tree.Detach(c.node); err != nil {
			s.logger.Error("mv %s: %v", c.src, err)
			return
		}
		if followCwd {
			s.cwd = mapping[s.cwd]
		}
	}
	if err := s.tree.Add(c.dir, copyID); err != nil {
		s.logger.Error("%s %s %s: %v", c.Name(), c.src, c.dst, err)
	}
}
