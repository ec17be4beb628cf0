package solution

import (
	"fmt"
	"strings"
)

// Scanner is a minimal forward-only cursor over a single line of text. It
// exists to pull quoted fields and punctuation out of header lines without a
// general tokenizer. The cursor never moves backwards.
type Scanner struct {
	line string
	pos  int
}

// NewScanner returns a Scanner positioned at the start of line.
func NewScanner(line string) *Scanner {
	return &Scanner{line: line}
}

// ReadUpToAndEat scans forward for the first occurrence of delim, returns
// everything before it, and advances the cursor past the delimiter. If delim
// does not occur in the remainder of the line it returns ErrMalformedLine
// and leaves the cursor where it was.
func (s *Scanner) ReadUpToAndEat(delim string) (string, error) {
	idx := strings.Index(s.line[s.pos:], delim)
	if idx < 0 {
		return "", fmt.Errorf("%w: missing %q in %q", ErrMalformedLine, delim, s.line[s.pos:])
	}
	token := s.line[s.pos : s.pos+idx]
	s.pos += idx + len(delim)
	return token, nil
}

// Rest consumes and returns everything after the cursor.
func (s *Scanner) Rest() string {
	rest := s.line[s.pos:]
	s.pos = len(s.line)
	return rest
}
