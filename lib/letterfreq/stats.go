package letterfreq

/*
 * stats.go
 * Frequency analysis of counted letters
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import "math"

// English holds the relative frequencies of the letters a-z in English text.
// See https://en.wikipedia.org/wiki/Letter_frequency
var English = [NLetters]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, /* a-g */
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, /* h-n */
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, /* o-u */
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, /* v-z */
}

// IndexOfCoincidence returns the chance that two letters picked at random
// from the counted text are the same, multiplied by 26.  English text comes
// out around 1.7, uniformly random letters around 1.0.  Fewer than two
// letters gives 0.
func (t Table) IndexOfCoincidence() float64 {
	n := t.Sum()
	if n < 2 {
		return 0
	}
	var same float64
	for _, f := range t {
		same += float64(f) * float64(f-1)
	}
	return NLetters * same / (float64(n) * float64(n-1))
}

// ChiSquared returns Pearson's chi-squared statistic comparing t to the
// relative frequencies in expected.  Smaller is a better fit.  Letters with
// an expected frequency of 0 are ignored.  An empty table gives 0.
func (t Table) ChiSquared(expected [NLetters]float64) float64 {
	n := float64(t.Sum())
	if 0 == n {
		return 0
	}
	var chi float64
	for i, f := range t {
		want := n * expected[i]
		if 0 >= want {
			continue
		}
		d := float64(f) - want
		chi += d * d / want
	}
	return chi
}

// Shift returns the table we'd get if every letter in the counted text were
// moved n letters back in the alphabet, i.e. after Caesar-decrypting with a
// key of n.  n may be negative or larger than 25.
func (t Table) Shift(n int) Table {
	n %= NLetters
	if n < 0 {
		n += NLetters
	}
	var s Table
	for i, f := range t {
		s[(i-n+NLetters)%NLetters] = f
	}
	return s
}

// CaesarKey returns the key letter which, used to Caesar-decrypt the counted
// text, gives letter frequencies closest to English.  The key letter 'a'
// shifts by 0, 'b' by 1, and so on.  Ties go to the earlier letter; an empty
// table gives 'a'.
func (t Table) CaesarKey() rune {
	best, bestChi := 0, math.Inf(1)
	for n := range NLetters {
		if chi := t.Shift(n).ChiSquared(English); chi < bestChi {
			best, bestChi = n, chi
		}
	}
	return rune('a' + best)
}
