package lines

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Sequence iterates over the lines of a reader.
// Not safe for concurrent use.
type Sequence struct {
	r    *bufio.Reader
	line string
	num  int
	err  error
	done bool
}

// NewSequence wraps r. Lines have no length limit.
func NewSequence(r io.Reader) *Sequence {
	return &Sequence{r: bufio.NewReader(r)}
}

// Next advances to the next line, which is then available through Text.
// It returns false at end of input or on a read error; check Err afterwards.
func (s *Sequence) Next() bool {
	if s.done {
		return false
	}

	raw, err := s.r.ReadString('\n')
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
			return false
		}
		if raw == "" {
			return false
		}
	}

	s.num++
	s.line = Chomp(raw)
	return true
}

// Text returns the current line without its terminator.
func (s *Sequence) Text() string {
	return s.line
}

// Number returns the 1-based number of the current line.
func (s *Sequence) Number() int {
	return s.num
}

// Err returns the first non-EOF read error.
func (s *Sequence) Err() error {
	return s.err
}

// Chomp removes exactly one trailing line terminator from line.
// "\r\n" counts as a single terminator.
func Chomp(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2]
	case strings.HasSuffix(line, "\n"), strings.HasSuffix(line, "\r"):
		return line[:len(line)-1]
	}
	return line
}
