// Package letterfreq - Count English letters in text
//
// Letters are counted case-insensitively into a fixed 26-slot [Table].  Only
// characters which are a-z after lowercasing are counted; everything else,
// including non-ASCII letters, is ignored.
package letterfreq

/*
 * letterfreq.go
 * Count English letters in text
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NLetters is the number of letters we count.
const NLetters = 26

// Table holds one count per letter.  Index i holds the count for 'a'+i.
type Table [NLetters]int

// Labels returns the letters "a" through "z", in the same order as the slots
// of a Table.
func Labels() []string {
	ls := make([]string, NLetters)
	for i := range ls {
		ls[i] = string(rune('a' + i))
	}
	return ls
}

// Sum returns the total number of letters counted in t.
func (t Table) Sum() int {
	var n int
	for _, v := range t {
		n += v
	}
	return n
}

// Weights returns the counts in t as a newly-allocated slice, in the same
// order as the labels returned by Labels.
func (t Table) Weights() []int {
	ws := make([]int, NLetters)
	copy(ws, t[:])
	return ws
}

// Get returns the count for the given letter, which may be upper or lower
// case.  Get returns 0 for anything which isn't an ASCII letter.
func (t Table) Get(letter rune) int {
	switch {
	case 'a' <= letter && letter <= 'z':
		return t[letter-'a']
	case 'A' <= letter && letter <= 'Z':
		return t[letter-'A']
	default:
		return 0
	}
}

// String returns the nonzero counts in t, e.g. "d:1 e:1 l:3".  An empty
// table is returned as "empty".
func (t Table) String() string {
	var sb strings.Builder
	for i, v := range t {
		if 0 == v {
			continue
		}
		if 0 != sb.Len() {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%c:%d", 'a'+i, v)
	}
	if 0 == sb.Len() {
		return "empty"
	}
	return sb.String()
}

// Counter accumulates letter counts from lines of text.  Its zero value is
// not usable; use NewCounter or NewRecordingCounter instead.  A Counter is not
// safe for concurrent use.
type Counter struct {
	t       Table
	lower   cases.Caser
	nLines  int
	record  bool   /* Keep the letters themselves, too. */
	letters []byte /* Counted letters, in order, if record is set. */
}

// NewCounter returns a new Counter with an empty table.
func NewCounter() *Counter {
	return &Counter{lower: cases.Lower(language.Und)}
}

// NewRecordingCounter returns a new Counter which also keeps every letter it
// counts, in order, for Counter.Letters.  This takes a byte of memory per
// letter.
func NewRecordingCounter() *Counter {
	c := NewCounter()
	c.record = true
	return c
}

// Add lowercases line and counts its letters.
func (c *Counter) Add(line string) {
	c.nLines++
	for _, r := range c.lower.String(line) {
		/* Only care about a-z, which are all one byte. */
		if r < 'a' || 'z' < r {
			continue
		}
		c.t[r-'a']++
		if c.record {
			c.letters = append(c.letters, byte(r))
		}
	}
}

// AddAll calls c.Add for each of the lines from lines.  Running out of lines
// is the normal way to finish.
func (c *Counter) AddAll(lines iter.Seq[string]) {
	for line := range lines {
		c.Add(line)
	}
}

// AddReader calls c.Add for each of the lines read from r, as split by Lines.
// EOF is success.  On any other read error, the lines read before the error
// are still counted.
func (c *Counter) AddReader(r io.Reader) error {
	lines, errf := Lines(r)
	c.AddAll(lines)
	if err := errf(); nil != err {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Table returns a copy of the counts so far.
func (c *Counter) Table() Table { return c.t }

// Lines returns the number of lines passed to Add.
func (c *Counter) Lines() int { return c.nLines }

// Letters returns a copy of the lowercase letters counted so far, in the order
// they were counted.  Letters returns nil unless c came from
// NewRecordingCounter.
func (c *Counter) Letters() []byte {
	if !c.record {
		return nil
	}
	return bytes.Clone(c.letters)
}

// Count counts the letters in all of the lines from lines.  Running out of
// lines is the normal way to finish.
func Count(lines iter.Seq[string]) Table {
	c := NewCounter()
	c.AddAll(lines)
	return c.Table()
}

// Letters returns the letters in lines, lowercased and in order.  Anything
// Count wouldn't count is left out.
func Letters(lines iter.Seq[string]) []byte {
	c := NewRecordingCounter()
	c.AddAll(lines)
	return c.Letters()
}

// Lines returns an iterator over the lines read from r.  Line endings (\n or
// \r\n) are removed.  A final line without a newline is still returned.
// There is no limit on line length.  Reaching the end of r ends the sequence;
// the returned function returns any other read error and should be called
// after iteration stops.
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	var rerr error
	seq := func(yield func(string) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			/* Don't bother yielding the empty "line" after the
			final newline. */
			if "" != line || nil == err {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(line) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			} else if nil != err {
				rerr = err
				return
			}
		}
	}
	return seq, func() error { return rerr }
}

// CountReader counts the letters in the lines read from r.  EOF is success.
// On any other read error, the counts up to the error are returned along with
// the error.
func CountReader(r io.Reader) (Table, error) {
	c := NewCounter()
	err := c.AddReader(r)
	return c.Table(), err
}
