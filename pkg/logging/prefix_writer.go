package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and adds a prefix to each line.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	partial bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer. Complete lines are emitted with the prefix
// prepended; a trailing partial line is held back until its newline arrives.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	n := len(p)

	for len(p) > 0 {
		idx := bytes.IndexByte(p, '\n')
		if idx < 0 {
			// No newline yet, hold the fragment for the next Write.
			pw.partial.Write(p)
			break
		}

		if _, err := pw.writer.Write(pw.prefix); err != nil {
			return 0, err
		}
		if pw.partial.Len() > 0 {
			if _, err := pw.partial.WriteTo(pw.writer); err != nil {
				return 0, err
			}
			pw.partial.Reset()
		}
		if _, err := pw.writer.Write(p[:idx+1]); err != nil {
			return 0, err
		}
		p = p[idx+1:]
	}

	return n, nil
}
