// Package writeutil has small writer helpers for line-oriented tool output.
package writeutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, retaining its first error and dropping all
// writes after it.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer while Err is nil, retaining any returned
// error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix to every line written
// through it. The Prefix field may be changed between writes.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	return &Prefixer{Prefix: prefix, to: w, atBOL: true}
}

// Prefixer is the writer returned by PrefixWriter.
type Prefixer struct {
	Prefix string
	to     io.Writer
	atBOL  bool
}

func (p *Prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if p.atBOL {
			if _, err = io.WriteString(p.to, p.Prefix); err != nil {
				return n, err
			}
			p.atBOL = false
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line, b = b[:i+1], b[i+1:]
			p.atBOL = true
		} else {
			b = nil
		}
		m, werr := p.to.Write(line)
		n += m
		if werr != nil {
			return n, werr
		}
	}
	return n, nil
}
