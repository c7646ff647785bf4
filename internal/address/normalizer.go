// Package address conditions free-text addresses before they are handed to
// the forward-geocoding service. The service is sensitive to administrative
// noise words (город/улица/дом markers) and returns lower-quality matches
// when they are left in.
package address

import (
	"regexp"
	"strings"
)

var (
	// Administrative abbreviations: city, street and house markers with a
	// trailing dot, e.g. "г. Ярославль, ул. Ленина, д. 10".
	markerPattern = regexp.MustCompile(`(?i)(^|\s)(г|гор|ул|д|дом|стр|корп)\.\s*`)

	commaPattern = regexp.MustCompile(`[,;]+`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Normalize strips administrative markers and stray punctuation from a raw
// address and collapses whitespace. It never fails; an empty or
// punctuation-only input normalizes to the empty string, which callers must
// treat as "no address supplied".
func Normalize(raw string) string {
	s := markerPattern.ReplaceAllString(raw, " ")
	s = commaPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
