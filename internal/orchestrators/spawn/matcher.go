package spawn

import (
	"slices"
	"strings"
	"unicode"
)

// guessAllowed reports whether the guess contains only characters that
// can appear in a catalog name: letters, digits, whitespace, hyphens,
// apostrophes, and periods. Anything else is rejected before matching
// so probing with regex-ish input reveals nothing.
func guessAllowed(guess string) bool {
	for _, r := range guess {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		case r == '-' || r == '\'' || r == '.':
		default:
			return false
		}
	}
	return true
}

// matchesName applies the name matching rules, case-insensitively:
// the full name, any single whitespace-delimited token of the name, or
// all of the name's words in any order.
func matchesName(guess, name string) bool {
	guessTokens := strings.Fields(strings.ToLower(guess))
	nameTokens := strings.Fields(strings.ToLower(name))
	if len(guessTokens) == 0 || len(nameTokens) == 0 {
		return false
	}

	if len(guessTokens) == 1 {
		return slices.Contains(nameTokens, guessTokens[0])
	}

	if len(guessTokens) != len(nameTokens) {
		return false
	}

	slices.Sort(guessTokens)
	slices.Sort(nameTokens)
	return slices.Equal(guessTokens, nameTokens)
}
