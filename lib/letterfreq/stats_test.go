package letterfreq

/*
 * stats_test.go
 * Tests for stats.go
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import (
	"math"
	"slices"
	"strings"
	"testing"
)

// prose is enough English to get English-looking frequencies.
const prose = `It is a truth universally acknowledged, that a single man in
possession of a good fortune, must be in want of a wife.  However little known
the feelings or views of such a man may be on his first entering a
neighbourhood, this truth is so well fixed in the minds of the surrounding
families, that he is considered as the rightful property of some one or other
of their daughters.
"My dear Mr. Bennet," said his lady to him one day, "have you heard that
Netherfield Park is let at last?"  Mr. Bennet replied that he had not.  "But
it is," returned she; "for Mrs. Long has just been here, and she told me all
about it."  Mr. Bennet made no answer.  "Do you not want to know who has taken
it?" cried his wife impatiently.  "You want to tell me, and I have no
objection to hearing it."  This was invitation enough.`

// caesar Caesar-encrypts s with the given key letter.
func caesar(s string, key rune) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return 'a' + (r-'a'+key-'a')%NLetters
		case 'A' <= r && r <= 'Z':
			return 'a' + (r-'A'+key-'a')%NLetters
		default:
			return r
		}
	}, s)
}

// near returns true if got and want are within 1e-9 of each other.
func near(got, want float64) bool { return math.Abs(got-want) < 1e-9 }

func TestEnglish(t *testing.T) {
	var sum float64
	for _, f := range English {
		if 0 >= f {
			t.Errorf("Nonpositive frequency %f", f)
		}
		sum += f
	}
	if 0.01 < math.Abs(1-sum) {
		t.Errorf("Frequencies sum to %f, not ~1", sum)
	}
	if 'e' != 'a'+slices.Index(English[:], slices.Max(English[:])) {
		t.Errorf("Most common letter isn't e")
	}
}

func TestTableIndexOfCoincidence(t *testing.T) {
	for _, c := range []struct {
		have string
		want float64
	}{
		{"", 0},
		{"a", 0},
		{"aaaa", 26},
		{"ab", 0},
		{"Hello World", 26 * 8.0 / 90.0},
		{"abcdefghijklmnopqrstuvwxyz", 0},
	} {
		t.Run(c.have, func(t *testing.T) {
			got := Count(slices.Values([]string{c.have})).
				IndexOfCoincidence()
			if !near(got, c.want) {
				t.Errorf("got:%f want:%f", got, c.want)
			}
		})
	}
}

func TestTableIndexOfCoincidence_English(t *testing.T) {
	got := Count(slices.Values([]string{prose})).IndexOfCoincidence()
	if got < 1.4 || 2.0 < got {
		t.Errorf("English text IC out of range: %f", got)
	}
}

func TestTableChiSquared(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := (Table{}).ChiSquared(English); 0 != got {
			t.Errorf("got:%f want:0", got)
		}
	})
	t.Run("perfect_fit", func(t *testing.T) {
		var (
			have     Table
			expected [NLetters]float64
		)
		for i := range have {
			have[i] = 2
			expected[i] = 1.0 / NLetters
		}
		if got := have.ChiSquared(expected); !near(got, 0) {
			t.Errorf("got:%f want:0", got)
		}
	})
	t.Run("two_letters", func(t *testing.T) {
		var (
			have     Table
			expected [NLetters]float64
		)
		have[0], have[1] = 3, 1
		expected[0], expected[1] = 0.5, 0.5
		/* Expected 2 and 2: (3-2)^2/2 + (1-2)^2/2 */
		if got := have.ChiSquared(expected); !near(got, 1) {
			t.Errorf("got:%f want:1", got)
		}
	})
	t.Run("english_fits_better", func(t *testing.T) {
		plain := Count(slices.Values([]string{prose}))
		enc := Count(slices.Values([]string{caesar(prose, 'k')}))
		if p, e := plain.ChiSquared(English),
			enc.ChiSquared(English); p >= e {
			t.Errorf(
				"Plaintext fit (%f) no better than "+
					"ciphertext (%f)",
				p,
				e,
			)
		}
	})
}

func TestTableShift(t *testing.T) {
	have := Count(slices.Values([]string{"abz"}))
	for _, c := range []struct {
		n    int
		want string
	}{
		{0, "a:1 b:1 z:1"},
		{1, "a:1 y:1 z:1"},
		{26, "a:1 b:1 z:1"},
		{27, "a:1 y:1 z:1"},
		{-1, "a:1 b:1 c:1"},
		{-53, "a:1 b:1 c:1"},
	} {
		if got := have.Shift(c.n).String(); got != c.want {
			t.Errorf(
				"Shift(%d): got:%s want:%s",
				c.n,
				got,
				c.want,
			)
		}
	}
	if got := have.Shift(5).Sum(); have.Sum() != got {
		t.Errorf("Shift changed sum: got:%d want:%d", got, have.Sum())
	}
}

func TestTableCaesarKey(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := (Table{}).CaesarKey(); 'a' != got {
			t.Errorf("got:%c want:a", got)
		}
	})
	t.Run("all_as", func(t *testing.T) {
		/* a - w == e, the most common English letter. */
		have := Count(slices.Values([]string{"aaaa"}))
		if got := have.CaesarKey(); 'w' != got {
			t.Errorf("got:%c want:w", got)
		}
	})
	for _, key := range "ahkqz" {
		t.Run("prose_"+string(key), func(t *testing.T) {
			have := Count(slices.Values([]string{
				caesar(prose, key),
			}))
			got := have.CaesarKey()
			if key != got {
				t.Fatalf("got:%c want:%c", got, key)
			}
			want := Count(slices.Values([]string{prose}))
			if got := have.Shift(int(got - 'a')); got != want {
				t.Errorf(
					"Decrypted table incorrect:\n"+
						" got: %s\n"+
						"want: %s",
					got,
					want,
				)
			}
		})
	}
}
