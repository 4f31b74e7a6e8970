package glob

import (
	"github.com/vvka-141/vfsim/internal/resolver"
	"github.com/vvka-141/vfsim/internal/vfs"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Expander turns wildcard paths into existing absolute paths.
type Expander struct {
	tree     *vfs.Tree
	resolver *resolver.Resolver
}

// NewExpander creates an expander over tree.
func NewExpander(tree *vfs.Tree, r *resolver.Resolver) *Expander {
	return &Expander{tree: tree, resolver: r}
}

// Expand returns every absolute path obtained by replacing the glob segments
// of path with matching child names, keeping only paths that resolve to a node.
// Paths come out in directory-scan order. An empty result is not an error.
func (e *Expander) Expand(path string, cwd vfs.NodeID) []string {
	tokens, err := e.resolver.Tokenize(path, cwd)
	if err != nil {
		return nil
	}

	root := e.tree.Root()
	candidates := []string{vfsim.RootName}
	for _, token := range tokens {
		pattern := Compile(token)
		if pattern.Literal() {
			for i, c := range candidates {
				candidates[i] = vfs.ChildPath(c, token)
			}
			continue
		}

		var next []string
		for _, c := range candidates {
			dir, err := e.resolver.Resolve(c, resolver.KindDir, root)
			if err != nil {
				continue
			}
			for _, child := range e.tree.Children(dir) {
				if name := e.tree.Name(child); pattern.Match(name) {
					next = append(next, vfs.ChildPath(c, name))
				}
			}
		}
		candidates = next
	}

	var existing []string
	for _, c := range candidates {
		if _, err := e.resolver.Resolve(c, resolver.KindAny, root); err == nil {
			existing = append(existing, c)
		}
	}
	return existing
}
