// Package textenc prepares record text for the standard PDF fonts.
//
// Record values arrive as UTF-8 from the database. The standard Type 1 fonts used by the
// reports are single-byte WinAnsiEncoding fonts, so text is normalised to NFC (combining
// accents become precomposed letters) and then transcoded to Windows-1252. Characters with no
// Windows-1252 code point are replaced with '?'.
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Replacement is written for runes WinAnsiEncoding cannot represent.
const Replacement = '?'

// Normalize returns s in Unicode NFC with invalid UTF-8 sequences replaced.
func Normalize(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return norm.NFC.String(s)
}

// RuneCount returns the number of characters in s after normalisation. This is the length
// the layout heuristics measure.
func RuneCount(s string) int {
	return utf8.RuneCountInString(Normalize(s))
}

// ToWinAnsi converts UTF-8 text to a Windows-1252 byte string.
func ToWinAnsi(s string) string {
	s = Normalize(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = Replacement
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// FromWinAnsi converts Windows-1252 bytes back to UTF-8.
func FromWinAnsi(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(charmap.Windows1252.DecodeByte(b))
	}
	return sb.String()
}
