package spotlight

// Group is a titled bucket of results of one kind.
type Group struct {
	Kind    ResultKind
	Title   string
	Results []Result
}

// Count returns the number of results in the group.
func (g *Group) Count() int {
	return len(g.Results)
}

// GroupResults buckets results by kind. Groups appear in the order their
// kind is first seen and keep the relative order of their results.
func GroupResults(results []Result) []*Group {
	var groups []*Group
	index := make(map[ResultKind]*Group)
	for _, r := range results {
		g, ok := index[r.Kind()]
		if !ok {
			g = &Group{Kind: r.Kind(), Title: r.Kind().Title()}
			index[r.Kind()] = g
			groups = append(groups, g)
		}
		g.Results = append(g.Results, r)
	}
	return groups
}

// FlattenGroups returns the results of groups in display order, the order
// used to number them.
func FlattenGroups(groups []*Group) []Result {
	var results []Result
	for _, g := range groups {
		results = append(results, g.Results...)
	}
	return results
}
