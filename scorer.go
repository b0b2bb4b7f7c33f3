package spotlight

import "context"

// Scorer rates the similarity of two strings between 0 (unrelated) and 1 (equal).
type Scorer interface {
	Score(a, b string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) float64

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b string) float64 {
	return f(a, b)
}

// Searcher runs one remote search for a query and returns ranked results.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
