// Package cards extracts game identifiers and card suit symbols from the
// free-form chat messages the upstream game feed produces.
package cards

import (
	"regexp"
	"strconv"
)

// #region patterns
var (
	gameNumberPattern = regexp.MustCompile(`#[nN](\d+)`)
	parenPattern      = regexp.MustCompile(`\(([^)]+)\)`)
)

// #endregion patterns

// #region game-number
// GameNumber extracts the first game identifier of the form #n744 or #N744.
// Returns ok=false when the message carries no identifier.
func GameNumber(message string) (int, bool) {
	m := gameNumberPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Digits long enough to overflow int do not name a real game.
		return 0, false
	}
	return n, true
}

// #endregion game-number

// #region paren-groups
// ParenGroups returns the contents of every parenthesized group in message,
// in left-to-right order. Matching is non-greedy per pair: each "(" pairs
// with the next ")", and unbalanced parentheses simply produce no match.
// Callers typically inspect only the first two groups.
func ParenGroups(message string) []string {
	matches := parenPattern.FindAllStringSubmatch(message, -1)
	if matches == nil {
		return nil
	}
	groups := make([]string, 0, len(matches))
	for _, m := range matches {
		groups = append(groups, m[1])
	}
	return groups
}

// #endregion paren-groups
