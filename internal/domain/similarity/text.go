package similarity

import (
	"math"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Normalize collapses every whitespace run into a single space, trims the ends
// and lower-cases the result.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Ratio returns the sequence similarity of two normalized strings: 2*M/T where M is
// the total size of the matching blocks found by greedy longest-block alignment and
// T is the combined rune length. Two empty strings have ratio 1.0.
//
// The pair is ordered before matching so the result does not depend on argument order.
func Ratio(a, b string) float64 {
	if a > b {
		a, b = b, a
	}
	m := difflib.NewMatcherWithJunk(runes(a), runes(b), false, nil)
	return m.Ratio()
}

// Percent converts a ratio in [0,1] to a percentage rounded to 2 decimal places.
func Percent(ratio float64) float64 {
	return math.Round(ratio*10000) / 100
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// WordSet is a set of lower-cased whitespace-delimited tokens.
type WordSet map[string]struct{}

// Words splits s on whitespace and lower-cases each token. Duplicates collapse.
func Words(s string) WordSet {
	fields := strings.Fields(s)
	set := make(WordSet, len(fields))
	for _, f := range fields {
		set[strings.ToLower(f)] = struct{}{}
	}
	return set
}

// Shared returns the intersection of two word sets, sorted.
func (w WordSet) Shared(other WordSet) []string {
	small, large := w, other
	if len(small) > len(large) {
		small, large = large, small
	}
	var out []string
	for word := range small {
		if _, ok := large[word]; ok {
			out = append(out, word)
		}
	}
	slices.Sort(out)
	return out
}
