package utils

import (
	"strings"
	"unicode"
)

// SanitizeFilename strips characters that are unsafe in a path component,
// keeping letters, digits, spaces, underscores and hyphens. Trailing
// whitespace is removed. Safe on any input, including the empty string.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// SanitizeTeamName reduces a team name to letters and digits only, since team
// names are embedded in compact filenames like "BayernMunich_lineups.csv".
func SanitizeTeamName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
