// Package textnorm canonicalizes free-text spreadsheet cells so grouping and
// filtering compare equal values equally.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns v as an uppercase string with diacritics removed and internal
// whitespace runs collapsed to one space. nil yields "". It never fails.
func Normalize(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeString(x)
	case fmt.Stringer:
		return normalizeString(x.String())
	default:
		return normalizeString(fmt.Sprint(x))
	}
}

func normalizeString(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(spaceToASCII),
		runes.Remove(runes.Predicate(nonASCII)),
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(folded), " "))
}

// spaceToASCII keeps non-ASCII whitespace as word boundaries for the collapse
// step.
func spaceToASCII(r rune) rune {
	if r >= unicode.MaxASCII && unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// nonASCII matches what NFKD could not decompose into ASCII, including DEL and
// the replacement rune standing in for invalid UTF-8.
func nonASCII(r rune) bool {
	return r >= unicode.MaxASCII
}

// Equal reports whether a and b normalize to the same string.
func Equal(a, b any) bool {
	return Normalize(a) == Normalize(b)
}
