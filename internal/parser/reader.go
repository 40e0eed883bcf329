package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chrissnell/tempstats/internal/log"
	"github.com/chrissnell/tempstats/internal/readings"
	"github.com/chrissnell/tempstats/internal/types"
)

// Policy decides what happens to a malformed line
type Policy int

const (
	// PolicySkip drops malformed lines and reports them alongside the readings
	PolicySkip Policy = iota
	// PolicyStrict aborts on the first malformed line
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "skip"
}

// LineError describes a line that could not be parsed
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line contents
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Reader reads readings from a line-oriented source one line at a time
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a new Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next non-blank line as a Reading. A line that does not
// parse is returned as a *LineError; the reader can keep going after it.
// io.EOF is returned once the source is exhausted.
func (rd *Reader) Next() (types.Reading, error) {
	for rd.scanner.Scan() {
		rd.line++
		text := rd.scanner.Text()

		r, err := ParseLine(text)
		if errors.Is(err, ErrBlankLine) {
			continue
		}
		if err != nil {
			return types.Reading{}, &LineError{Line: rd.line, Text: text, Err: err}
		}
		return r, nil
	}

	if err := rd.scanner.Err(); err != nil {
		return types.Reading{}, fmt.Errorf("error reading line %d: %w", rd.line+1, err)
	}
	return types.Reading{}, io.EOF
}

// ReadAll parses every line of r into a new collection. Under PolicySkip the
// malformed lines are returned next to the collection; under PolicyStrict the
// first one is returned as the error.
func ReadAll(r io.Reader, policy Policy) (*readings.Collection, []*LineError, error) {
	rd := NewReader(r)
	c := readings.New(64)
	var skipped []*LineError

	for {
		reading, err := rd.Next()
		if err == io.EOF {
			break
		}

		var lineErr *LineError
		if errors.As(err, &lineErr) {
			if policy == PolicyStrict {
				return nil, nil, lineErr
			}
			log.Warnw("skipping malformed line", "line", lineErr.Line, "text", lineErr.Text)
			skipped = append(skipped, lineErr)
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		c.Append(reading)
	}

	log.Debugw("parsed input", "readings", c.Len(), "skipped", len(skipped), "policy", policy.String())
	return c, skipped, nil
}
