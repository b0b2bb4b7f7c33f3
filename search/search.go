// Package search implements the spotlight aggregator: instant matching over
// local state, resource-search shortcuts, debounced network searches with
// cancellation, and the merge of all three into one ranked list.
package search

import (
	"strings"

	"github.com/fwojciec/spotlight"
	"golang.org/x/text/unicode/norm"
)

// Merge concatenates instant, network and shortcut results in that order.
func Merge(instant, network, shortcuts []spotlight.Result) []spotlight.Result {
	merged := make([]spotlight.Result, 0, len(instant)+len(network)+len(shortcuts))
	merged = append(merged, instant...)
	merged = append(merged, network...)
	merged = append(merged, shortcuts...)
	return merged
}

// Keywords splits a query into folded whitespace-separated keywords.
func Keywords(query string) []string {
	return strings.Fields(Fold(strings.TrimSpace(query)))
}

// Fold applies NFKC normalization and lowercases s, so full-width input
// from CJK input methods matches its ASCII form.
func Fold(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}
