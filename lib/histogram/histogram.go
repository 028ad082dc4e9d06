// Package histogram - Draw text histograms
//
// Each bucket is drawn on its own line as a label, a bar scaled to the
// largest weight, and the weight itself:
//
//	d |###       | 1
//	e |###       | 1
//	l |##########| 3
package histogram

/*
 * histogram.go
 * Draw text histograms
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/magisterquis/goxterm"
	"golang.org/x/text/message"
)

const (
	// DefaultWidth is the bar width used when Renderer.Width isn't
	// positive.
	DefaultWidth = 50
	// DefaultBar is the bar used when Renderer.Bar is empty.
	DefaultBar = "#"
)

var (
	// ErrLengthMismatch is returned by Renderer.Render when it's given
	// different numbers of labels and weights.
	ErrLengthMismatch = errors.New("labels and weights lengths differ")
	// ErrNegativeWeight is returned by Renderer.Render when it's given a
	// weight less than 0.
	ErrNegativeWeight = errors.New("negative weight")
)

// Renderer draws histograms.  Its zero value draws uncolored DefaultWidth
// bars of DefaultBar.
type Renderer struct {
	// Width is the length of the longest bar, in repetitions of Bar.
	Width int
	// Bar is repeated to draw a bar.
	Bar string

	// Escape, if not nil, is used to color bars.
	Escape *goxterm.EscapeCodes
	// BarColor is the color for bars, if Escape isn't nil.
	BarColor Color
	// PeakColor is the color for the longest bar(s), if Escape isn't nil.
	PeakColor Color

	// Printer, if not nil, formats weights, e.g. with digit grouping.
	Printer *message.Printer
}

// Render draws a histogram with one bar per label to w.  The weights are the
// bars' heights, in the same order as labels.  An all-zero histogram is
// drawn with empty bars.
func (r Renderer) Render(w io.Writer, labels []string, weights []int) error {
	if len(labels) != len(weights) {
		return fmt.Errorf(
			"%w: %d labels, %d weights",
			ErrLengthMismatch,
			len(labels),
			len(weights),
		)
	}
	if 0 == len(labels) {
		return nil
	}
	if i := slices.IndexFunc(weights, func(v int) bool {
		return v < 0
	}); -1 != i {
		return fmt.Errorf(
			"%w for %s: %d",
			ErrNegativeWeight,
			labels[i],
			weights[i],
		)
	}

	/* Work out how much room everything takes. */
	var (
		width  = r.width()
		bar    = r.bar()
		peak   = slices.Max(weights)
		counts = make([]string, len(weights))
		labelW int
		countW int
	)
	for i, l := range labels {
		labelW = max(labelW, utf8.RuneCountInString(l))
		counts[i] = r.formatWeight(weights[i])
		countW = max(countW, utf8.RuneCountInString(counts[i]))
	}

	/* Draw ALL the bars. */
	for i, l := range labels {
		n := barLen(weights[i], peak, width)
		color := r.BarColor
		if 0 != peak && weights[i] == peak {
			color = r.PeakColor
		}
		if _, err := fmt.Fprintf(
			w,
			"%s%s |%s%s| %s%s\n",
			strings.Repeat(" ", labelW-utf8.RuneCountInString(l)),
			l,
			r.Wrap(strings.Repeat(bar, n), color),
			strings.Repeat(" ", (width-n)*utf8.RuneCountInString(bar)),
			strings.Repeat(" ", countW-utf8.RuneCountInString(counts[i])),
			counts[i],
		); nil != err {
			return fmt.Errorf("writing bar for %s: %w", l, err)
		}
	}

	return nil
}

// barLen returns the length of a bar for weight v, when a weight of peak
// gets a bar of width.  Any nonzero weight gets at least a bar of 1.
func barLen(v, peak, width int) int {
	if 0 == v || 0 == peak {
		return 0
	}
	return max(1, v*width/peak)
}

// width returns r.Width, or DefaultWidth if r.Width isn't positive.
func (r Renderer) width() int {
	if 0 >= r.Width {
		return DefaultWidth
	}
	return r.Width
}

// bar returns r.Bar, or DefaultBar if r.Bar is empty.
func (r Renderer) bar() string {
	if "" == r.Bar {
		return DefaultBar
	}
	return r.Bar
}

// formatWeight formats v with r.Printer, if we have one.
func (r Renderer) formatWeight(v int) string {
	if nil == r.Printer {
		return fmt.Sprintf("%d", v)
	}
	return r.Printer.Sprintf("%d", v)
}
