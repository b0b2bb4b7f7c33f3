package search

import (
	"strings"

	"github.com/fwojciec/spotlight"
)

// MatchInstant scans already-loaded local state for the query.
// Results are ordered routing history first (only for queries starting with
// "/"), then players, then instances. An empty query matches nothing.
func MatchInstant(state spotlight.LocalState, query string) []spotlight.Result {
	keywords := Keywords(query)
	if len(keywords) == 0 || state == nil {
		return nil
	}

	var results []spotlight.Result

	if strings.HasPrefix(query, "/") && len(query) > 1 {
		prefix := Fold(strings.TrimSpace(query))
		history := state.History()
		for i := len(history) - 1; i >= 0; i-- {
			if strings.HasPrefix(history[i], prefix) {
				results = append(results, spotlight.PageResult{Route: history[i]})
				break
			}
		}
	}

	for _, p := range state.Players() {
		name := Fold(p.Name)
		account := Fold(p.AuthAccount)
		if containsAny(keywords, name, account) {
			results = append(results, spotlight.PlayerResult{Player: p})
		}
	}

	for _, inst := range state.Instances() {
		fields := []string{Fold(inst.Name), Fold(inst.Version)}
		if loader := inst.ModLoader.LoaderType; loader != "" && loader != spotlight.LoaderUnknown {
			fields = append(fields, Fold(string(loader)))
		}
		if containsAny(keywords, fields...) {
			results = append(results, spotlight.InstanceResult{Instance: inst})
		}
	}

	return results
}

// containsAny reports whether any keyword is a substring of any non-empty field.
func containsAny(keywords []string, fields ...string) bool {
	for _, kw := range keywords {
		for _, f := range fields {
			if f != "" && strings.Contains(f, kw) {
				return true
			}
		}
	}
	return false
}
