package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsim/internal/logging"
	"github.com/vvka-141/vfsim/internal/shell"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

func newRunner(opts ...Option) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	logger := logging.NewNullLogger()
	s := shell.NewSession(&out, &errOut, logger)
	return NewRunner(s, &out, &errOut, logger, opts...), &out, &errOut
}

func TestRunner_Golden(t *testing.T) {
	in, err := os.Open(filepath.Join("testdata", "basic.vfs"))
	require.NoError(t, err)
	defer in.Close()

	wantOut, err := os.ReadFile(filepath.Join("testdata", "basic.out"))
	require.NoError(t, err)
	wantErr, err := os.ReadFile(filepath.Join("testdata", "basic.err"))
	require.NoError(t, err)

	r, out, errOut := newRunner()
	n, err := r.Run(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 17, n)
	assertGolden(t, "basic.out", string(wantOut), out.String())
	assertGolden(t, "basic.err", string(wantErr), errOut.String())
}

// assertGolden fails with a unified diff when got differs from want.
func assertGolden(t *testing.T, name, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name,
		ToFile:   "actual",
		Context:  2,
	})
	require.NoError(t, err)
	t.Errorf("%s mismatch:\n%s", name, diff)
}

func TestRunner_WithoutLineNumbers(t *testing.T) {
	r, out, errOut := newRunner(WithLineNumbers(false))
	n, err := r.Run(context.Background(), strings.NewReader("mkdir a\nls\ncd nope\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, "/:\n/a\n\n", out.String())
	assert.Equal(t, "cd: nope: No such directory\n", errOut.String())
}

func TestRunner_LastLineWithoutNewline(t *testing.T) {
	r, out, _ := newRunner()
	n, err := r.Run(context.Background(), strings.NewReader("pwd"))
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, "1\n/\n", out.String())
}

func TestRunner_EmptyScript(t *testing.T) {
	r, out, errOut := newRunner()
	n, err := r.Run(context.Background(), strings.NewReader(""))
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, _, _ := newRunner()
	n, err := r.Run(ctx, strings.NewReader("mkdir a\n"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunner_SinkFailure(t *testing.T) {
	logger := logging.NewNullLogger()
	var errOut bytes.Buffer
	s := shell.NewSession(brokenWriter{}, &errOut, logger)
	r := NewRunner(s, brokenWriter{}, &errOut, logger)

	_, err := r.Run(context.Background(), strings.NewReader("pwd\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, vfsim.ErrOutputFailed))
}
