package letterfreq

/*
 * vigenere.go
 * Vigenère ciphers and guessing their keys
 * By J. Stuart McMurray
 * Created 20261019
 * Last Modified 20261019
 */

import (
	"errors"
	"strings"
)

const (
	// MaxKeyLen bounds the key lengths VigenereKey tries.  Only keys
	// shorter than MaxKeyLen are found.
	MaxKeyLen = 256
	// ICThreshold is the strided index of coincidence above which
	// VigenereKey assumes it's found the key length.  English text is
	// around 1.7, random letters around 1.0.
	ICThreshold = 1.6
)

// ErrInvalidKey is returned when a Vigenère key is empty or has something
// other than the letters a-z in it.
var ErrInvalidKey = errors.New("key must be one or more of the letters a-z")

// column returns the table of every stride'th letter in letters, starting at
// offset.  letters must only contain a-z.
func column(letters []byte, offset, stride int) Table {
	var t Table
	for i := offset; i < len(letters); i += stride {
		t[letters[i]-'a']++
	}
	return t
}

// StridedIC splits letters, which must only contain a-z, into stride
// columns: every stride'th letter starting with the first, every stride'th
// letter starting with the second, and so on.  It returns the average of the
// columns' indices of coincidence.  When stride is the length of a Vigenère
// key, each column is Caesar-shifted text and StridedIC looks like English.
// A stride less than 1 gives 0.
func StridedIC(letters []byte, stride int) float64 {
	if stride < 1 {
		return 0
	}
	var ic float64
	for off := range stride {
		ic += column(letters, off, stride).IndexOfCoincidence()
	}
	return ic / float64(stride)
}

// VigenereKey guesses the key used to Vigenère-encrypt letters, which must
// only contain a-z, such as those returned by Letters.  Key lengths are tried
// from 1 up until StridedIC rises above ICThreshold, and then each letter of
// the key is found with Table.CaesarKey on its column.  If no length shorter
// than MaxKeyLen works, VigenereKey returns "", false.
func VigenereKey(letters []byte) (string, bool) {
	/* Find the key length. */
	keyLen := 0
	for n := 1; n < MaxKeyLen; n++ {
		if StridedIC(letters, n) > ICThreshold {
			keyLen = n
			break
		}
	}
	if 0 == keyLen {
		return "", false
	}

	/* Each column's just a Caesar cipher. */
	var sb strings.Builder
	for off := range keyLen {
		sb.WriteRune(column(letters, off, keyLen).CaesarKey())
	}
	return sb.String(), true
}

// VigenereEncrypt encrypts letters, which must only contain a-z, with key.
// The ith letter is shifted forward by the (i mod len(key))th letter of key,
// with 'a' shifting by 0.  letters isn't modified.
func VigenereEncrypt(key string, letters []byte) ([]byte, error) {
	return vigenere(key, letters, false)
}

// VigenereDecrypt undoes VigenereEncrypt.
func VigenereDecrypt(key string, letters []byte) ([]byte, error) {
	return vigenere(key, letters, true)
}

// vigenere shifts letters forward by key, or backwards if reverse is true.
func vigenere(key string, letters []byte, reverse bool) ([]byte, error) {
	if "" == key || strings.ContainsFunc(key, func(r rune) bool {
		return r < 'a' || 'z' < r
	}) {
		return nil, ErrInvalidKey
	}
	out := make([]byte, len(letters))
	for i, l := range letters {
		k := int(key[i%len(key)] - 'a')
		if reverse {
			k = NLetters - k
		}
		out[i] = 'a' + byte((int(l-'a')+k)%NLetters)
	}
	return out, nil
}
