package shell

import (
	"strings"

	"github.com/vvka-141/vfsim/internal/resolver"
	"github.com/vvka-141/vfsim/internal/vfs"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Complete returns the candidate completions of a partially typed path,
// in name order. Each candidate is partial with its last segment replaced
// by a matching child name; directories get a trailing separator.
func (s *Session) Complete(partial string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, leaf := resolver.SplitLeaf(partial)
	if strings.HasSuffix(partial, vfsim.PathSeparator) || partial == "" {
		parent, leaf = partial, ""
	}

	dir, err := s.resolver.Resolve(parent, resolver.KindDir, s.cwd)
	if err != nil {
		return nil
	}

	base := partial[:len(partial)-len(leaf)]
	var matches []string
	for _, child := range s.tree.Children(dir) {
		name := s.tree.Name(child)
		if !strings.HasPrefix(name, leaf) {
			continue
		}
		candidate := base + name
		if s.tree.Kind(child) == vfs.Directory {
			candidate += vfsim.PathSeparator
		}
		matches = append(matches, candidate)
	}
	return matches
}
