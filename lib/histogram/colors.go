package histogram

/*
 * colors.go
 * Colors for histogram bars
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import (
	"bytes"
	"io"

	"github.com/magisterquis/goxterm"
)

// Color represents a specific color.
type Color int

// Options for bar colors.
const (
	ColorNone Color = iota // No color at all
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorReset
)

// ColorEC returns the escape code for the given color from ec.  A non-nil
// slice will always be returned, even if ec is nil.  As a special case,
// ColorNone returns an empty slice, as do unknown colors.  The returned slice
// is a copy of the slice in ec or a newly-allocated slice; it may be modified
// at will.
func ColorEC(ec *goxterm.EscapeCodes, color Color) []byte {
	/* No escape codes means no colors. */
	if nil == ec {
		return make([]byte, 0)
	}

	/* Figure out what color to return. */
	var b []byte
	switch color {
	case ColorBlack:
		b = ec.Black
	case ColorRed:
		b = ec.Red
	case ColorGreen:
		b = ec.Green
	case ColorYellow:
		b = ec.Yellow
	case ColorBlue:
		b = ec.Blue
	case ColorMagenta:
		b = ec.Magenta
	case ColorCyan:
		b = ec.Cyan
	case ColorWhite:
		b = ec.White
	case ColorReset:
		b = ec.Reset
	}

	/* No slice?  Probably ColorNone or something we've not heard of. */
	if nil == b {
		return make([]byte, 0)
	}

	/* Keep grubby mitts off our slice. */
	return bytes.Clone(b)
}

// Wrap returns s, wrapped on the left with the given color and on the right
// with ColorReset.  If r.Escape is nil, s is empty, or color is ColorNone, s
// is returned unchanged.
func (r Renderer) Wrap(s string, color Color) string {
	/* If we're not actually coloring things, nothing to do.  Coloring
	nothing just wastes bytes. */
	if nil == r.Escape || "" == s || ColorNone == color {
		return s
	}
	return string(ColorEC(r.Escape, color)) +
		s +
		string(ColorEC(r.Escape, ColorReset))
}

// EscapeCodes returns the escape codes for coloring output written to w,
// which should be a terminal.  Nothing is read from or written to w.
func EscapeCodes(w io.Writer) *goxterm.EscapeCodes {
	return goxterm.NewTerminal(writeOnlyRW{w}, "").Escape
}

// writeOnlyRW turns an io.Writer into an io.ReadWriter which never has
// anything to read.  goxterm.NewTerminal wants a reader, though we never
// call anything which reads.
type writeOnlyRW struct{ io.Writer }

// Read always returns 0, io.EOF.
func (writeOnlyRW) Read([]byte) (int, error) { return 0, io.EOF }

//go:generate stringer -trimprefix Color -type Color
