package search

import (
	"strings"

	"github.com/fwojciec/spotlight"
)

// Shortcuts returns one resource-search shortcut per resource type and
// source, types ordered by popularity, CurseForge before Modrinth.
// Combinations a source does not host are skipped.
func Shortcuts(query string) []spotlight.Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var results []spotlight.Result
	for _, source := range spotlight.Sources() {
		for _, t := range spotlight.ResourceTypes() {
			if !source.Hosts(t) {
				continue
			}
			results = append(results, spotlight.ShortcutResult{Type: t, Source: source, Query: query})
		}
	}
	return results
}
