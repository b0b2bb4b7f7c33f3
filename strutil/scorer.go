// Package strutil adapts github.com/adrg/strutil string metrics to spotlight.Scorer.
package strutil

import (
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/fwojciec/spotlight"
)

// Metric names accepted by NewScorer.
const (
	MetricLevenshtein  = "levenshtein"
	MetricJaroWinkler  = "jaro-winkler"
	MetricJaccard      = "jaccard"
	MetricSorensenDice = "sorensen-dice"
	MetricOverlap      = "overlap"
)

// Metrics returns every metric name NewScorer accepts.
func Metrics() []string {
	return []string{MetricLevenshtein, MetricJaroWinkler, MetricJaccard, MetricSorensenDice, MetricOverlap}
}

var _ spotlight.Scorer = (*Scorer)(nil)

// Scorer rates strings with a strutil metric after removing whitespace.
type Scorer struct {
	metric strutil.StringMetric
}

// NewScorer returns a Scorer for the named metric.
// Returns EINVALID for an unknown name.
func NewScorer(name string) (*Scorer, error) {
	var metric strutil.StringMetric
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MetricLevenshtein:
		metric = metrics.NewLevenshtein()
	case MetricJaroWinkler:
		metric = metrics.NewJaroWinkler()
	case MetricJaccard:
		metric = metrics.NewJaccard()
	case MetricSorensenDice:
		metric = metrics.NewSorensenDice()
	case MetricOverlap:
		metric = metrics.NewOverlapCoefficient()
	default:
		return nil, spotlight.Errorf(spotlight.EINVALID, "unknown scorer %q", name)
	}
	return &Scorer{metric: metric}, nil
}

// Score returns the metric's similarity of a and b in [0, 1].
func (s *Scorer) Score(a, b string) float64 {
	a, b = stripSpace(a), stripSpace(b)
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	return strutil.Similarity(a, b, s.metric)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
