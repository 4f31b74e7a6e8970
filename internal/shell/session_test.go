package shell

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsim/internal/logging"
	"github.com/vvka-141/vfsim/internal/vfs"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

type harness struct {
	s      *Session
	out    *bytes.Buffer
	errOut *bytes.Buffer
	log    *logging.RecordingLogger
}

func newHarness(t *testing.T, setup ...string) *harness {
	t.Helper()
	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, log: logging.NewRecordingLogger()}
	h.s = NewSession(h.out, h.errOut, h.log)
	h.exec(t, setup...)
	require.Empty(t, h.errOut.String(), "setup produced errors")
	h.reset()
	return h
}

func (h *harness) exec(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, h.s.Exec(line), "exec %q", line)
	}
}

func (h *harness) reset() {
	h.out.Reset()
	h.errOut.Reset()
}

// listing renders the ls output for one directory.
func listing(dir string, children ...string) string {
	return dir + ":\n" + strings.Join(children, " ") + "\n\n"
}

func TestSession_CreateAndList(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "mkdir a", "cd a", "mkdir b", "touch c.txt", "ls")

	assert.Equal(t, listing("/a", "/a/b", "/a/c.txt"), h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestSession_ListIsSortedByName(t *testing.T) {
	h := newHarness(t, "touch zeta", "mkdir alpha", "touch Beta", "mkdir mid")
	h.exec(t, "ls /")

	assert.Equal(t, listing("/", "/Beta", "/alpha", "/mid", "/zeta"), h.out.String())
}

func TestSession_TouchTwiceReportsExisting(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "touch f", "touch f", "ls")

	assert.Equal(t, "touch: cannot create file /f: Node exists\n", h.errOut.String())
	assert.Equal(t, listing("/", "/f"), h.out.String())
}

func TestSession_Pwd(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir a/b")
	h.exec(t, "pwd", "cd a/b", "pwd", "cd ..", "pwd", "cd ./b/../..", "pwd")

	assert.Equal(t, "/\n/a/b\n/a\n/\n", h.out.String())
	assert.Equal(t, "/", h.s.Pwd())
}

func TestSession_RecursiveListVisitsEachDirectoryOnce(t *testing.T) {
	h := newHarness(t, "mkdir x", "mkdir x/y", "touch x/y/f", "touch x/g")
	h.exec(t, "ls -R /x")

	want := listing("/x", "/x/g", "/x/y") + listing("/x/y", "/x/y/f")
	assert.Equal(t, want, h.out.String())
}

func TestSession_RecursiveListFromRoot(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir a/c", "mkdir b")
	h.exec(t, "ls -R")

	want := listing("/", "/a", "/b") + listing("/a", "/a/c") + listing("/a/c") + listing("/b")
	assert.Equal(t, want, h.out.String())
}

func TestSession_ListWithGrep(t *testing.T) {
	h := newHarness(t, "mkdir d", "touch d/a.txt", "touch d/b.go", "mkdir d/sub", "touch d/sub/c.txt")

	t.Run("flat", func(t *testing.T) {
		h.reset()
		h.exec(t, `ls /d | grep ".*\.go"`)
		assert.Equal(t, listing("/d", "/d/b.go"), h.out.String())
	})

	t.Run("recursive", func(t *testing.T) {
		h.reset()
		h.exec(t, `ls -R /d | grep ".*\.txt"`)
		assert.Equal(t, listing("/d", "/d/a.txt")+listing("/d/sub", "/d/sub/c.txt"), h.out.String())
	})

	t.Run("star in pattern is not expanded", func(t *testing.T) {
		h.reset()
		h.exec(t, `ls /d | grep "s.*"`)
		assert.Equal(t, listing("/d", "/d/sub"), h.out.String())
		assert.Empty(t, h.errOut.String())
	})

	t.Run("pattern must match whole name", func(t *testing.T) {
		h.reset()
		h.exec(t, `ls /d | grep "a"`)
		assert.Equal(t, listing("/d"), h.out.String())
	})
}

func TestSession_CopyIsDeep(t *testing.T) {
	h := newHarness(t, "mkdir a", "touch a/f", "mkdir b")
	h.exec(t, "cp a b", "rm b/a/f", "ls /a", "ls /b/a")

	assert.Equal(t, listing("/a", "/a/f")+listing("/b/a"), h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestSession_MoveRepointsCurrentDirectory(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		move  string
		want  string
	}{
		{"ancestor moved", []string{"mkdir a", "mkdir a/b", "mkdir c", "cd a/b"}, "mv /a /c", "/c/a/b"},
		{"current directory moved", []string{"mkdir a", "mkdir b", "cd a"}, "mv /a /b", "/b/a"},
		{"unrelated move", []string{"mkdir a", "mkdir b", "mkdir c", "cd c"}, "mv /a /b", "/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.setup...)
			h.exec(t, tt.move, "pwd")

			assert.Empty(t, h.errOut.String())
			assert.Equal(t, tt.want+"\n", h.out.String())
			assert.True(t, h.s.Tree().IsLive(h.s.Cwd()))
		})
	}
}

func TestSession_MoveFile(t *testing.T) {
	h := newHarness(t, "touch f", "mkdir d")
	h.exec(t, "mv f d", "ls -R /")

	assert.Equal(t, listing("/", "/d")+listing("/d", "/d/f"), h.out.String())
}

func TestSession_RemoveProtectsCurrentDirectory(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir a/b", "cd a/b")
	h.exec(t, "rm /a", "rm /a/b", "rm /", "ls /")

	assert.Empty(t, h.errOut.String())
	assert.Equal(t, listing("/", "/a"), h.out.String())
	assert.True(t, h.log.Contains("skipped"))
}

func TestSession_RemoveUsesSegmentPrefix(t *testing.T) {
	h := newHarness(t, "mkdir fo", "mkdir foo", "cd foo")
	h.exec(t, "rm /fo", "ls /")

	assert.Equal(t, listing("/", "/foo"), h.out.String())
}

func TestSession_ErrorMessages(t *testing.T) {
	setup := []string{"mkdir a", "mkdir a/b", "touch f"}

	tests := []struct {
		line string
		want string
	}{
		{"ls /nope", "ls: /nope: No such directory"},
		{"ls f", "ls: f: No such directory"},
		{"cd /nope", "cd: /nope: No such directory"},
		{"cd f", "cd: f: No such directory"},
		{"cd ..", "cd: ..: No such directory"},
		{"touch /x/y", "touch: /x: No such directory"},
		{"touch f/y", "touch: f: No such directory"},
		{"mkdir x/y/z", "mkdir: x/y: No such directory"},
		{"mkdir /a", "mkdir: cannot create directory /a: Node exists"},
		{"mkdir a/b", "mkdir: cannot create directory /a/b: Node exists"},
		{"cp /nope /", "cp: cannot copy /nope: No such file or directory"},
		{"cp /f /nope", "cp: cannot copy into /nope: No such directory"},
		{"cp /f /f", "cp: cannot copy into /f: No such directory"},
		{"cp /f /", "cp: cannot copy /f: Node exists at destination"},
		{"cp / /a", "cp: cannot copy /: Root directory"},
		{"mv /nope /a", "mv: cannot move /nope: No such file or directory"},
		{"mv /f /nope", "mv: cannot move into /nope: No such directory"},
		{"mv /a /a/b", "mv: cannot move /a: Destination inside source"},
		{"mv /a /a", "mv: cannot move /a: Destination inside source"},
		{"mv a/b /a", "mv: cannot move a/b: Node exists at destination"},
		{"mv / /a", "mv: cannot move /: Root directory"},
		{"rm /nope", "rm: cannot remove /nope: No such file or directory"},
		{"rm /f/x", "rm: cannot remove /f/x: No such file or directory"},
		{"frob x", "frob: command not found"},
		{"cd", "cd: missing operand"},
		{"cp /f", "cp: missing operand"},
		{"ls | grep", "grep: missing operand"},
		{`ls | grep "["`, "grep: [: Invalid pattern"},
		{`ls /a | grep "a)|(b"`, "grep: a)|(b: Invalid pattern"},
		{`ls /a | cat "b"`, "cat: command not found"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t, setup...)
			h.exec(t, tt.line)

			assert.Equal(t, tt.want+"\n", h.errOut.String())
			assert.Empty(t, h.out.String())
		})
	}
}

func TestSession_FailedCommandsLeaveTreeUnchanged(t *testing.T) {
	h := newHarness(t, "mkdir a", "touch a/f")
	before := h.s.Tree().Len()
	h.exec(t, "cp /a /a/f", "mv /a /a", "touch a/f", "rm /zzz")

	assert.Equal(t, before, h.s.Tree().Len())
}

func TestSession_BlankLineIsNoop(t *testing.T) {
	h := newHarness(t)
	h.exec(t, "", "   ", "\t")

	assert.Empty(t, h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestSession_StarRemove(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir b", "touch a/f", "touch b/f", "touch b/g")
	h.exec(t, "rm /*/f", "ls -R /")

	assert.Empty(t, h.errOut.String())
	assert.Equal(t, listing("/", "/a", "/b")+listing("/a")+listing("/b", "/b/g"), h.out.String())
	assert.True(t, h.log.Contains("expanded to 2 path(s)"))
}

func TestSession_StarPathContainingGrepExpands(t *testing.T) {
	h := newHarness(t, "mkdir grepdir", "touch grepdir/f", "touch grepdir/g")
	h.exec(t, "rm /grep*/f", "ls /grepdir")

	assert.Empty(t, h.errOut.String())
	assert.Equal(t, listing("/grepdir", "/grepdir/g"), h.out.String())
}

func TestSession_StarRemoveSkipsCurrentDirectory(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir b", "touch c", "cd a")
	h.exec(t, "rm /*", "ls /")

	assert.Empty(t, h.errOut.String())
	assert.Equal(t, listing("/", "/a"), h.out.String())
}

func TestSession_StarList(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir a/x", "mkdir b", "touch c")

	t.Run("files are skipped silently", func(t *testing.T) {
		h.reset()
		h.exec(t, "ls /*")
		assert.Equal(t, listing("/a", "/a/x")+listing("/b"), h.out.String())
		assert.Empty(t, h.errOut.String())
	})

	t.Run("recursive flag is kept", func(t *testing.T) {
		h.reset()
		h.exec(t, "ls -R /a*")
		assert.Equal(t, listing("/a", "/a/x")+listing("/a/x"), h.out.String())
	})

	t.Run("relative pattern", func(t *testing.T) {
		h.reset()
		h.exec(t, "cd a", "ls ../b*")
		assert.Equal(t, listing("/b"), h.out.String())
		h.exec(t, "cd /")
	})
}

func TestSession_StarCreate(t *testing.T) {
	h := newHarness(t, "mkdir a", "mkdir b", "touch c")
	h.exec(t, "touch /*/f", "mkdir /*/d", "ls -R /")

	want := listing("/", "/a", "/b", "/c") +
		listing("/a", "/a/d", "/a/f") + listing("/a/d") +
		listing("/b", "/b/d", "/b/f") + listing("/b/d")
	assert.Equal(t, want, h.out.String())
	assert.Empty(t, h.errOut.String())

	h.reset()
	h.exec(t, "touch /*/f")
	assert.Equal(t,
		"touch: cannot create file /a/f: Node exists\ntouch: cannot create file /b/f: Node exists\n",
		h.errOut.String())
}

func TestSession_StarNoMatch(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"ls /z*", "ls: /z*: No such directory"},
		{"rm /z*", "rm: cannot remove /z*: No such file or directory"},
		{"touch /z*/f", "touch: /z*: No such directory"},
		{"mkdir /z*/d", "mkdir: /z*: No such directory"},
		{"rm /a**", "rm: cannot remove /a**: No such file or directory"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h := newHarness(t, "mkdir a")
			h.exec(t, tt.line)
			assert.Equal(t, tt.want+"\n", h.errOut.String())
		})
	}
}

func TestSession_StarIsLiteralForCd(t *testing.T) {
	h := newHarness(t, "mkdir a")
	h.exec(t, "cd a*")

	assert.Equal(t, "cd: a*: No such directory\n", h.errOut.String())
}

func TestSession_NamesStayUnique(t *testing.T) {
	h := newHarness(t, "mkdir a", "touch a/f", "mkdir b", "touch b/f")
	h.exec(t, "cp a/f b", "mv b/f a", "mkdir a", "touch /a/f")

	tree := h.s.Tree()
	tree.Walk(tree.Root(), func(id vfs.NodeID) {
		seen := make(map[string]bool)
		for _, child := range tree.Children(id) {
			name := tree.Name(child)
			require.False(t, seen[name], "duplicate %s under %s", name, tree.Path(id))
			seen[name] = true
			assert.True(t, tree.Find(id, name))
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSession_SinkFailure(t *testing.T) {
	s := NewSession(failingWriter{}, &bytes.Buffer{}, logging.NewNullLogger())

	require.NoError(t, s.Exec("mkdir a"))
	err := s.Exec("ls")
	require.Error(t, err)
	assert.True(t, errors.Is(err, vfsim.ErrOutputFailed))

	// the sink state is per line
	require.NoError(t, s.Exec("mkdir b"))
}

func TestSession_IndependentSessions(t *testing.T) {
	h1 := newHarness(t, "mkdir a", "cd a")
	h2 := newHarness(t)

	assert.Equal(t, "/a", h1.s.Pwd())
	assert.Equal(t, "/", h2.s.Pwd())
	assert.Equal(t, 1, h2.s.Tree().Len())
	assert.NotEqual(t, h1.s.ID(), h2.s.ID())
}

func TestSession_ConcurrentExec(t *testing.T) {
	h := newHarness(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = h.s.Exec(fmt.Sprintf("mkdir d%02d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 21, h.s.Tree().Len())
	assert.Len(t, h.s.Tree().Children(h.s.Tree().Root()), 20)
}

func TestSession_SetOutput(t *testing.T) {
	h := newHarness(t)
	var out bytes.Buffer
	h.s.SetOutput(&out, h.errOut)
	h.exec(t, "pwd")

	assert.Equal(t, "/\n", out.String())
	assert.Empty(t, h.out.String())
}

func TestSession_NilLogger(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out, &out, nil)

	require.NoError(t, s.Exec("mkdir a"))
	require.NoError(t, s.Exec("rm /"))
	assert.Empty(t, out.String())
}
