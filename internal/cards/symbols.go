package cards

import (
	"sort"
	"strings"
)

// #region suit-set
// Suits is the fixed ordered set of recognized card suit glyphs.
// Each glyph carries the U+FE0F emoji presentation selector, matching the
// upstream game feed verbatim. Extraction scans in this order.
var Suits = []string{"♥️", "♠️", "♦️", "♣️"}

// #endregion suit-set

// #region extract
// Extract returns the multiset of suit occurrences in fragment, one entry
// per textual occurrence, grouped in Suits order. No normalization is
// applied to the fragment; matching is exact substring containment.
func Extract(fragment string) []string {
	var symbols []string
	for _, suit := range Suits {
		n := strings.Count(fragment, suit)
		for i := 0; i < n; i++ {
			symbols = append(symbols, suit)
		}
	}
	return symbols
}

// Count returns the total number of suit occurrences in fragment,
// duplicates included.
func Count(fragment string) int {
	total := 0
	for _, suit := range Suits {
		total += strings.Count(fragment, suit)
	}
	return total
}

// #endregion extract

// #region distinct
// Distinct returns the set of distinct suit glyphs present in symbols,
// in first-seen order.
func Distinct(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	var out []string
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// #endregion distinct

// #region normalize
// Normalize produces the canonical combination string for a set of suit
// symbols: distinct glyphs sorted by code point and concatenated. Two
// fragments containing the same suits in any order normalize identically.
func Normalize(symbols []string) string {
	distinct := Distinct(symbols)
	sort.Strings(distinct)
	return strings.Join(distinct, "")
}

// #endregion normalize
