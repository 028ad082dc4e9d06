// Package chanlog - Log to a channel, for testing
package chanlog

/*
 * chanlog.go
 * Log to a channel, for testing
 * By J. Stuart McMurray
 * Created 20240925
 * Last Modified 20261019
 */

import (
	"log/slog"
	"strings"
	"testing"
)

// BufLen is the size of the buffer in the channel returned by New.
const BufLen = 1024

// ChanLog wraps a chan string as a blockingish logfile.  Writes are sent as
// strings less surrounding whitespace to the wrapped chan.  Don't send it
// anything which isn't a log line.
type ChanLog chan string

// New returns a new ChanLog with a BufLen-sized buffer and an slog.Logger
// which writes JSON to it.  The logger logs at Debug and above and leaves
// out timestamps, so log lines look like
//
//	{"level":"INFO","msg":"Counted letters","lines":2}
func New() (ChanLog, *slog.Logger) {
	cl := ChanLog(make(chan string, BufLen))
	/* Timestamps make for unpredictable log lines. */
	sl := slog.New(slog.NewJSONHandler(cl, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: removeTime,
	}))
	return cl, sl
}

// removeTime removes the top-level time attribute from log lines.
func removeTime(groups []string, a slog.Attr) slog.Attr {
	if 0 == len(groups) && slog.TimeKey == a.Key {
		return slog.Attr{}
	}
	return a
}

// Write converts b to a string and sends it to cl.  It always returns
// len(b), nil.
func (cl ChanLog) Write(b []byte) (int, error) {
	cl <- strings.TrimSpace(string(b))
	return len(b), nil
}

// Expect expects the log entries on cl.  It calls t.Errorf for mismatches and
// blocks until as many log entries as supplied lines are read.
func (cl ChanLog) Expect(t *testing.T, lines ...string) {
	t.Helper()
	/* Make sure we get each line. */
	for _, want := range lines {
		got, ok := <-cl
		if !ok { /* Channel closed early. */
			t.Errorf(
				"Log channel closed while waiting for %q",
				want,
			)
			return
		} else if got != want { /* Wrong line. */
			t.Errorf(
				"Unexpected log line:\n got: %s\nwant: %s",
				got,
				want,
			)
		}
	}
}

// ExpectEmpty is like cl.Expect, except it checks that the log is empty
// afterwards and calls t.Errorf with any leftover lines.  This is inherently
// racy and shouldn't be called concurrently with calls to cl.Write.
func (cl ChanLog) ExpectEmpty(t *testing.T, lines ...string) {
	t.Helper()
	cl.Expect(t, lines...)

	/* Anything left is an error. */
	var got []string
	for 0 != len(cl) {
		l, ok := <-cl
		if !ok {
			break
		}
		got = append(got, l)
	}

	/* If we got no leftovers, life's good. */
	if 0 == len(got) {
		return
	}

	/* Tell someone about the unexpected line(s). */
	var s string
	if 1 < len(got) {
		s = "s"
	}
	t.Errorf(
		"Unexpected leftover log line%s:\n%s",
		s,
		strings.Join(got, "\n"),
	)
}
