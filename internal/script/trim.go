package script

import (
	"bytes"
	"io"
)

// TrimWriter strips trailing spaces and tabs from every line written
// through it. Incomplete lines are held back until a newline or Flush.
type TrimWriter struct {
	w       io.Writer
	pending []byte
}

// NewTrimWriter wraps w.
func NewTrimWriter(w io.Writer) *TrimWriter {
	return &TrimWriter{w: w}
}

// Write implements io.Writer.
func (t *TrimWriter) Write(p []byte) (int, error) {
	t.pending = append(t.pending, p...)
	for {
		i := bytes.IndexByte(t.pending, '\n')
		if i < 0 {
			break
		}
		line := append(trimRight(t.pending[:i]), '\n')
		if _, err := t.w.Write(line); err != nil {
			return 0, err
		}
		t.pending = t.pending[i+1:]
	}
	if len(t.pending) == 0 {
		t.pending = nil
	}
	return len(p), nil
}

// Flush writes any incomplete final line.
func (t *TrimWriter) Flush() error {
	if len(t.pending) == 0 {
		return nil
	}
	_, err := t.w.Write(trimRight(t.pending))
	t.pending = nil
	return err
}

func trimRight(line []byte) []byte {
	return bytes.Clone(bytes.TrimRight(line, " \t\r"))
}
