package solution

import (
	"bufio"
	"io"
	"strings"
)

// LineReader is a forward-only line stream with single-line lookahead. The
// document and project parsers cooperate on the tolerant `EndProject`
// recovery by peeking the next line before deciding who consumes it; making
// the lookahead an explicit method keeps that contract in the type instead
// of in a shared cursor convention.
//
// Carriage returns from CRLF input are stripped, so callers always see bare
// line contents.
type LineReader struct {
	scanner *bufio.Scanner
	pending string
	hasPend bool
	lineNum int
	done    bool
}

// NewLineReader wraps r in a LineReader. The reader does not close r; the
// stream remains owned by the caller.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// Peek returns the next line without consuming it. The second result is
// false once the stream is exhausted.
func (r *LineReader) Peek() (string, bool) {
	if r.hasPend {
		return r.pending, true
	}
	if r.done || !r.scanner.Scan() {
		r.done = true
		return "", false
	}
	r.pending = strings.TrimSuffix(r.scanner.Text(), "\r")
	r.hasPend = true
	return r.pending, true
}

// Read consumes and returns the next line.
func (r *LineReader) Read() (string, bool) {
	line, ok := r.Peek()
	if !ok {
		return "", false
	}
	r.hasPend = false
	r.lineNum++
	return line, true
}

// Line returns the 1-based number of the last line consumed by Read. It is
// zero before the first Read.
func (r *LineReader) Line() int {
	return r.lineNum
}

// SkipBlank consumes whitespace-only lines until the next significant line
// or end of input.
func (r *LineReader) SkipBlank() {
	for {
		line, ok := r.Peek()
		if !ok || strings.TrimSpace(line) != "" {
			return
		}
		r.Read()
	}
}

// Err reports any I/O error encountered by the underlying stream.
func (r *LineReader) Err() error {
	return r.scanner.Err()
}
