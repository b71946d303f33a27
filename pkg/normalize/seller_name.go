package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD and drops combining marks, so "Bárbara"
// and "Barbara" normalize to the same bytes.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes combining marks so "impressões" and
// "impressoes" fold to the same key. Input is returned unchanged on
// transform failure.
func StripAccents(raw string) string {
	cleaned, _, err := transform.String(stripAccents, raw)
	if err != nil {
		return raw
	}
	return cleaned
}

// SellerName reduces a free-text seller name to the canonical join key
// used across the calls, sales and funnel tables: accents stripped,
// whitespace collapsed, first token only, upper-cased. The function is
// idempotent and returns "" for empty input.
func SellerName(raw string) string {
	cleaned, _, err := transform.String(stripAccents, raw)
	if err != nil {
		cleaned = raw
	}
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// SellerNameFromEmail derives the canonical seller key from a login
// email: the local part up to the first dot, normalized like SellerName.
// "sabrina.lima@example.com" becomes "SABRINA".
func SellerNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	first, _, _ := strings.Cut(local, ".")
	return SellerName(first)
}

// TitleCaseName rewrites a lower/mixed-case full name into the Title
// Case form the snapshot job stores in its owner column ("sabrina lima"
// becomes "Sabrina Lima"). Accents are preserved; only word-initial
// letters change.
func TitleCaseName(raw string) string {
	fields := strings.Fields(strings.ToLower(raw))
	for i, field := range fields {
		r := []rune(field)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
