package shell

import (
	"strings"

	"github.com/vvka-141/vfsim/internal/resolver"
	"github.com/vvka-141/vfsim/internal/vfs"
)

type listCommand struct {
	path      string
	dir       vfs.NodeID
	found     bool
	recursive bool
	filter    *Filter
	report    bool
}

func (s *Session) newList(inv Invocation, report bool) (*listCommand, error) {
	c := &listCommand{path: inv.Path(), recursive: inv.Recursive, report: report}
	if inv.Grep {
		f, err := CompileFilter(inv.Pattern)
		if err != nil {
			return nil, err
		}
		c.filter = f
	}
	dir, err := s.resolver.Resolve(c.path, resolver.KindDir, s.cwd)
	c.dir, c.found = dir, err == nil
	return c, nil
}

func (c *listCommand) Name() string { return KeywordLs }

func (c *listCommand) Execute(s *Session) {
	if !c.found {
		if c.report {
			s.errorf("ls: %s: %s", c.path, reasonNoDirectory)
		}
		return
	}
	if !c.recursive {
		s.list(c.dir, c.filter)
		return
	}
	for _, dir := range s.directoriesFrom(c.dir) {
		s.list(dir, c.filter)
	}
}

// list prints the header, the matching child paths and a blank line.
func (s *Session) list(dir vfs.NodeID, filter *Filter) {
	dirPath := s.tree.Path(dir)
	s.outputLine(dirPath + ":")

	var paths []string
	for _, child := range s.tree.Children(dir) {
		p := vfs.ChildPath(dirPath, s.tree.Name(child))
		if filter != nil && !filter.Match(p) {
			continue
		}
		paths = append(paths, p)
	}
	s.outputLine(strings.Join(paths, " "))
	s.outputLine("")
}

// directoriesFrom returns start and every directory below it in
// depth-first visitation order, each exactly once.
func (s *Session) directoriesFrom(start vfs.NodeID) []vfs.NodeID {
	visited := make(map[vfs.NodeID]bool)
	var queue []vfs.NodeID

	var visit func(id vfs.NodeID)
	visit = func(id vfs.NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		if !s.tree.IsDir(id) {
			return
		}
		queue = append(queue, id)
		for _, child := range s.tree.Children(id) {
			visit(child)
		}
	}
	visit(start)
	return queue
}
