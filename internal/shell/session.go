package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/vvka-141/vfsim/internal/glob"
	"github.com/vvka-141/vfsim/internal/logging"
	"github.com/vvka-141/vfsim/internal/resolver"
	"github.com/vvka-141/vfsim/internal/vfs"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Session is one independent simulator instance: a tree, its current
// directory and the sinks commands write to.
//
// Exec holds the session lock for the whole parse, resolve and execute cycle
// of a line, so concurrent callers observe every command as atomic.
type Session struct {
	mu       sync.Mutex
	id       uuid.UUID
	tree     *vfs.Tree
	resolver *resolver.Resolver
	expander *glob.Expander
	cwd      vfs.NodeID
	out      io.Writer
	errOut   io.Writer
	logger   vfsim.Logger
	writeErr error
}

// NewSession creates a session over an empty tree, with the root as current directory.
func NewSession(out, errOut io.Writer, logger vfsim.Logger) *Session {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	tree := vfs.New()
	r := resolver.New(tree)
	s := &Session{
		id:       uuid.New(),
		tree:     tree,
		resolver: r,
		expander: glob.NewExpander(tree, r),
		cwd:      tree.Root(),
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
	logger.Verbose("session %s started", s.id)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Tree returns the session's tree. Callers must not mutate it while Exec runs.
func (s *Session) Tree() *vfs.Tree { return s.tree }

// Cwd returns the handle of the current directory.
func (s *Session) Cwd() vfs.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cwd
}

// Pwd returns the path of the current directory.
func (s *Session) Pwd() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Path(s.cwd)
}

// SetOutput redirects the output and error sinks.
func (s *Session) SetOutput(out, errOut io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out, s.errOut = out, errOut
}

// Exec parses and runs a single command line. Command failures are written
// to the error sink; the returned error is non-nil only when a sink fails.
func (s *Session) Exec(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = nil

	inv, err := Parse(line)
	if err != nil {
		s.errorLine(err.Error())
		return s.writeErr
	}
	if inv.Keyword == "" {
		return nil
	}

	if inv.Star {
		s.logger.Verbose("star %s %v", inv.Keyword, inv.Args)
	} else {
		s.logger.Verbose("exec %s %v", inv.Keyword, inv.Args)
	}
	s.run(inv, true)
	return s.writeErr
}

// run builds and executes one command. report controls whether
// "not found" failures reach the error sink.
func (s *Session) run(inv Invocation, report bool) {
	cmd, err := s.build(inv, report)
	if err != nil {
		s.errorLine(err.Error())
		return
	}
	cmd.Execute(s)
}

func (s *Session) outputLine(line string) {
	s.writeLine(s.out, line)
}

func (s *Session) errorLine(line string) {
	s.writeLine(s.errOut, line)
}

func (s *Session) errorf(format string, args ...interface{}) {
	s.errorLine(fmt.Sprintf(format, args...))
}

func (s *Session) writeLine(w io.Writer, line string) {
	if s.writeErr != nil {
		return
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		s.writeErr = fmt.Errorf("%w: %v", vfsim.ErrOutputFailed, err)
	}
}
