package feed

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single feed line. Event payloads are small; a line
// this large is a corrupt feed, not a real event.
const maxLineBytes = 1 << 20

// Reader decodes a JSON Lines event feed in delivery order, one event per
// line. Blank lines are skipped; a malformed line surfaces as an error with
// its line number, and the caller decides whether the feed can continue.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader wraps r in a feed reader.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Next returns the next decoded event. io.EOF signals a cleanly exhausted
// feed.
func (r *Reader) Next() (Event, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		ev, err := Decode([]byte(text))
		if err != nil {
			return Event{}, fmt.Errorf("feed line %d: %w", r.line, err)
		}
		return ev, nil
	}
	if err := r.sc.Err(); err != nil {
		return Event{}, fmt.Errorf("feed line %d: %w", r.line+1, err)
	}
	return Event{}, io.EOF
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}
