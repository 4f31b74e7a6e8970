package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/vvka-141/vfsim/internal/shell"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// Runner feeds lines to a session and numbers them on both sinks.
type Runner struct {
	session     *shell.Session
	out         *TrimWriter
	errOut      *TrimWriter
	logger      vfsim.Logger
	lineNumbers bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLineNumbers toggles the per-line index. It is on by default.
func WithLineNumbers(enabled bool) Option {
	return func(r *Runner) { r.lineNumbers = enabled }
}

// NewRunner creates a runner and points the session's sinks at out and errOut.
func NewRunner(session *shell.Session, out, errOut io.Writer, logger vfsim.Logger, opts ...Option) *Runner {
	r := &Runner{
		session:     session,
		out:         NewTrimWriter(out),
		errOut:      NewTrimWriter(errOut),
		logger:      logger,
		lineNumbers: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	session.SetOutput(r.out, r.errOut)
	return r
}

// Run executes every line of in and returns how many lines were processed.
// Command failures go to the error sink and do not stop the run; a failing
// sink, a read error or a cancelled context does.
func (r *Runner) Run(ctx context.Context, in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	count := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		count++

		if r.lineNumbers {
			if err := r.writeIndex(count); err != nil {
				return count, err
			}
		}
		if err := r.session.Exec(scanner.Text()); err != nil {
			return count, fmt.Errorf("line %d: %w", count, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading script: %w", err)
	}

	if err := r.flush(); err != nil {
		return count, err
	}
	r.logger.Verbose("processed %d line(s)", count)
	return count, nil
}

func (r *Runner) writeIndex(n int) error {
	index := strconv.Itoa(n) + "\n"
	for _, w := range []io.Writer{r.errOut, r.out} {
		if _, err := io.WriteString(w, index); err != nil {
			return fmt.Errorf("%w: %v", vfsim.ErrOutputFailed, err)
		}
	}
	return nil
}

func (r *Runner) flush() error {
	for _, w := range []*TrimWriter{r.out, r.errOut} {
		if err := w.Flush(); err != nil {
			return fmt.Errorf("%w: %v", vfsim.ErrOutputFailed, err)
		}
	}
	return nil
}
