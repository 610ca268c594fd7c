package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compiled once; Normalize runs on every query token and candidate name.
var multiSpacePattern = regexp.MustCompile(`\s+`)

// stripMarks decomposes to NFD, drops combining marks ("maçã" -> "maca"),
// and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for comparison: lowercase, no
// diacritics, single internal spaces, trimmed. Total and idempotent;
// empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; compare the raw bytes then.
		out = s
	}

	out = strings.ToLower(out)
	out = multiSpacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
