// Program letterhist - Histogram of the letters read from stdin
package main

/*
 * letterhist.go
 * Histogram of the letters read from stdin
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/magisterquis/letterhist/lib/histogram"
	"github.com/magisterquis/letterhist/lib/letterfreq"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// LogEnvVar is the environment variable we use for the default
	// logfile, which will be "" if unset.
	LogEnvVar = "LETTERHIST_LOG"
	// MinWidth is the narrowest we'll make bars when working out the
	// width from the terminal.
	MinWidth = 10
)

// widthSlop is how much of a terminal's width we leave for a label, the
// bar's borders, and a count.
const widthSlop = 16

// Log messages and keys.
const (
	LMStarting    = "Starting"
	LMCounted     = "Counted letters"
	LMReadFailed  = "Reading input failed"
	LMWriteFailed = "Writing histogram failed"
	LMTerminating = "Program terminating"

	LKError   = "error"
	LKLines   = "lines"
	LKLetters = "letters"
	LKWidth   = "width"
	LKColor   = "color"
	LKStats   = "stats"
)

// Bar colors, when we're coloring.
const (
	BarColor  = histogram.ColorCyan
	PeakColor = histogram.ColorGreen
)

func main() { os.Exit(rmain()) }

func rmain() int {
	/* Command-line flags. */
	var (
		logFile = flag.String(
			"log",
			os.Getenv(LogEnvVar),
			"Optional `file` to which to write JSON logs",
		)
		width = flag.Int(
			"width",
			0,
			"Maximum bar `width`, or 0 to fit the terminal",
		)
		bar = flag.String(
			"bar",
			histogram.DefaultBar,
			"Bar `string`, repeated to draw bars",
		)
		noColor = flag.Bool(
			"no-color",
			false,
			"Don't color bars, even on a terminal",
		)
		groupDigits = flag.Bool(
			"group-digits",
			false,
			"Group counts' digits in thousands",
		)
		printStats = flag.Bool(
			"stats",
			false,
			"Also print the index of coincidence, fit to "+
				"English, and likely Caesar and Vigenère keys",
		)
	)
	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			`Usage: %s [options] <text

Reads text from stdin and draws a histogram of how often each of the letters
a-z appears, ignoring case.  Anything which isn't a letter is ignored.

Options:
`,
			os.Args[0],
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	/* Make sure the flags make sense. */
	if 0 > *width {
		log.Printf("Bar width must not be negative")
		return 2
	}
	if "" == *bar {
		log.Printf("Bar string must not be empty")
		return 2
	}

	/* Set up logging.  If we're not writing to a logfile, we'll just kinda
	discard log messages.  Beats checking for nil, anyways. */
	var lw = io.Discard
	if "" != *logFile {
		f, err := os.OpenFile(
			*logFile,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0600,
		)
		if nil != err {
			log.Printf(
				"Error opening logfile %s: %s",
				*logFile,
				err,
			)
			return 1
		}
		defer f.Close()
		lw = f
	}
	sl := slog.New(slog.NewJSONHandler(lw, nil))

	/* Work out how to draw. */
	r := histogram.Renderer{
		Width:     *width,
		Bar:       *bar,
		BarColor:  BarColor,
		PeakColor: PeakColor,
	}
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if isTTY && !*noColor {
		r.Escape = histogram.EscapeCodes(os.Stdout)
	}
	if 0 == r.Width {
		r.Width = terminalWidth(isTTY)
	}
	if *groupDigits {
		r.Printer = message.NewPrinter(language.English)
	}

	/* Count and draw. */
	if err := run(sl, os.Stdin, os.Stdout, r, *printStats); nil != err {
		log.Printf("Error: %s", err)
		sl.Info(LMTerminating, LKError, err)
		return 1
	}
	sl.Info(LMTerminating)

	return 0
}

// terminalWidth works out a bar width which fits stdout, if it's a terminal.
// If it's not or we can't get its size, terminalWidth returns
// histogram.DefaultWidth.
func terminalWidth(isTTY bool) int {
	if !isTTY {
		return histogram.DefaultWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return histogram.DefaultWidth
	}
	return max(MinWidth, w-widthSlop)
}

// run counts the letters in the lines read from in and draws a histogram of
// them to out with r.  If printStats is true, a bit of frequency analysis is
// printed after the histogram.
func run(
	sl *slog.Logger,
	in io.Reader,
	out io.Writer,
	r histogram.Renderer,
	printStats bool,
) error {
	sl.Info(
		LMStarting,
		LKWidth, r.Width,
		LKColor, nil != r.Escape,
		LKStats, printStats,
	)

	/* Count ALL the letters.  We only need the letters themselves for
	working out a Vigenère key. */
	c := letterfreq.NewCounter()
	if printStats {
		c = letterfreq.NewRecordingCounter()
	}
	if err := c.AddReader(in); nil != err {
		sl.Error(LMReadFailed, LKError, err, LKLines, c.Lines())
		return err
	}
	t := c.Table()
	sl.Info(LMCounted, LKLines, c.Lines(), LKLetters, t.Sum())

	/* Draw ALL the bars. */
	if err := r.Render(
		out,
		letterfreq.Labels(),
		t.Weights(),
	); nil != err {
		sl.Error(LMWriteFailed, LKError, err)
		return err
	}
	if err := writeFooter(out, r.Printer, c, printStats); nil != err {
		sl.Error(LMWriteFailed, LKError, err)
		return fmt.Errorf("writing footer: %w", err)
	}

	return nil
}

// writeFooter writes the total number of letters counted by c to w, as well
// as some statistics if printStats is true.  p, if not nil, formats the total.
// The Vigenère key is only guessed if c kept its letters.
func writeFooter(
	w io.Writer,
	p *message.Printer,
	c *letterfreq.Counter,
	printStats bool,
) error {
	t := c.Table()
	total := fmt.Sprintf("%d", t.Sum())
	if nil != p {
		total = p.Sprintf("%d", t.Sum())
	}
	if _, err := fmt.Fprintf(w, "total: %s\n", total); nil != err {
		return err
	}
	if !printStats {
		return nil
	}

	/* Guess at what sort of cipher we might have. */
	vkey, ok := letterfreq.VigenereKey(c.Letters())
	if !ok {
		vkey = "none found"
	}
	_, err := fmt.Fprintf(
		w,
		"index of coincidence: %.4f\n"+
			"chi-squared vs. English: %.2f\n"+
			"likely Caesar key: %c\n"+
			"likely Vigenere key: %s\n",
		t.IndexOfCoincidence(),
		t.ChiSquared(letterfreq.English),
		t.CaesarKey(),
		vkey,
	)
	return err
}
