package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and adds a prefix to each line.
// Incomplete lines are held back until their newline arrives.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending []byte
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements the io.Writer interface. Each complete line reaches the
// underlying writer in a single Write call, prefix included.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)

	for {
		i := bytes.IndexByte(pw.pending, '\n')
		if i < 0 {
			break
		}

		line := make([]byte, 0, len(pw.prefix)+i+1)
		line = append(line, pw.prefix...)
		line = append(line, pw.pending[:i+1]...)
		pw.pending = pw.pending[i+1:]

		if _, err := pw.writer.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
