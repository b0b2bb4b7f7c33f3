package search

import (
	"unicode"

	"github.com/fwojciec/spotlight"
)

// DiceScorer scores strings with the Sørensen–Dice coefficient over
// character bigrams, ignoring whitespace.
var DiceScorer spotlight.Scorer = spotlight.ScorerFunc(CompareTwoStrings)

// CompareTwoStrings returns the Sørensen–Dice coefficient of the bigram
// multisets of a and b after removing whitespace. The comparison is case
// sensitive; callers lowercase when needed.
func CompareTwoStrings(a, b string) float64 {
	first := stripSpace(a)
	second := stripSpace(b)

	if string(first) == string(second) {
		return 1
	}
	if len(first) < 2 || len(second) < 2 {
		return 0
	}

	bigrams := make(map[[2]rune]int, len(first)-1)
	for i := 0; i < len(first)-1; i++ {
		bigrams[[2]rune{first[i], first[i+1]}]++
	}

	intersection := 0
	for i := 0; i < len(second)-1; i++ {
		bg := [2]rune{second[i], second[i+1]}
		if bigrams[bg] > 0 {
			bigrams[bg]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(first)+len(second)-2)
}

func stripSpace(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}
