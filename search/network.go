package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/spotlight"
	"golang.org/x/sync/errgroup"
)

// PriorityTypes are the resource types queried by a network search.
func PriorityTypes() []spotlight.ResourceType {
	return []spotlight.ResourceType{
		spotlight.ResourceMod,
		spotlight.ResourceModPack,
		spotlight.ResourceResourcePack,
		spotlight.ResourceShaderPack,
	}
}

var _ spotlight.Searcher = (*NetworkSearcher)(nil)

// NetworkSearcher fans a query out to every (resource type, source) pair,
// keeps relevant hits and caps them per source.
type NetworkSearcher struct {
	Resources spotlight.ResourceService
	Scorer    spotlight.Scorer
	Logger    *slog.Logger

	// Types and Sources default to PriorityTypes and spotlight.Sources.
	Types   []spotlight.ResourceType
	Sources []spotlight.Source

	// Zero values fall back to the spotlight defaults.
	MinRelevance        float64
	MaxPerSource        int
	ResourcesPerRequest int
}

// NewNetworkSearcher returns a NetworkSearcher tuned by cfg.
func NewNetworkSearcher(resources spotlight.ResourceService, scorer spotlight.Scorer, cfg spotlight.SearchConfig, logger *slog.Logger) *NetworkSearcher {
	return &NetworkSearcher{
		Resources:           resources,
		Scorer:              scorer,
		Logger:              logger,
		MinRelevance:        cfg.MinRelevance,
		MaxPerSource:        cfg.MaxPerSource,
		ResourcesPerRequest: cfg.ResourcesPerRequest,
	}
}

type request struct {
	typ    spotlight.ResourceType
	source spotlight.Source
}

// Search runs one network search. Failed requests contribute no results
// and never abort their siblings. Returns the context error if ctx is
// canceled before all requests settle.
func (s *NetworkSearcher) Search(ctx context.Context, query string) ([]spotlight.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	types := s.Types
	if len(types) == 0 {
		types = PriorityTypes()
	}
	sources := s.Sources
	if len(sources) == 0 {
		sources = spotlight.Sources()
	}
	pageSize := s.ResourcesPerRequest
	if pageSize <= 0 {
		pageSize = spotlight.DefaultResourcesPerRequest
	}

	var requests []request
	for _, t := range types {
		for _, src := range sources {
			if src.Hosts(t) {
				requests = append(requests, request{typ: t, source: src})
			}
		}
	}

	// All-settled join: goroutines never return errors.
	kept := make([][]*spotlight.Resource, len(requests))
	var g errgroup.Group
	for i, req := range requests {
		g.Go(func() error {
			kept[i] = s.fetch(ctx, query, req, pageSize)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []*spotlight.Resource
	for _, list := range kept {
		merged = append(merged, list...)
	}
	return s.capPerSource(merged, sources), nil
}

// fetch performs one request and returns the hits scoring above the threshold.
func (s *NetworkSearcher) fetch(ctx context.Context, query string, req request, pageSize int) []*spotlight.Resource {
	if ctx.Err() != nil {
		return nil
	}

	page, err := s.Resources.FetchResourceListByName(ctx, spotlight.ResourceQuery{
		Type:        req.typ,
		Query:       query,
		GameVersion: spotlight.AllFilter,
		Tag:         spotlight.AllFilter,
		SortBy:      req.source.DefaultSort(),
		Source:      req.source,
		Page:        0,
		PageSize:    pageSize,
	})
	if err != nil {
		if ctx.Err() == nil {
			s.logger().Debug("resource request failed",
				"source", req.source,
				"type", req.typ,
				"err", err,
			)
		}
		return nil
	}
	if ctx.Err() != nil || page == nil {
		return nil
	}

	var kept []*spotlight.Resource
	for _, r := range page.List {
		if s.Relevance(query, r) > s.minRelevance() {
			kept = append(kept, r)
		}
	}
	return kept
}

// Relevance scores a resource against the raw query as the best of the
// folded name and the translated name.
func (s *NetworkSearcher) Relevance(query string, r *spotlight.Resource) float64 {
	scorer := s.Scorer
	if scorer == nil {
		scorer = DiceScorer
	}
	score := scorer.Score(Fold(query), Fold(r.Name))
	if r.TranslatedName != "" {
		score = max(score, scorer.Score(query, r.TranslatedName))
	}
	return score
}

// capPerSource keeps the first MaxPerSource resources of each source,
// preserving request order, and emits sources in the given order.
func (s *NetworkSearcher) capPerSource(resources []*spotlight.Resource, sources []spotlight.Source) []spotlight.Result {
	limit := s.MaxPerSource
	if limit <= 0 {
		limit = spotlight.DefaultMaxPerSource
	}

	var results []spotlight.Result
	for _, src := range sources {
		n := 0
		for _, r := range resources {
			if r.Source != src {
				continue
			}
			if n == limit {
				break
			}
			results = append(results, spotlight.ResourceResult{Resource: r})
			n++
		}
	}
	return results
}

func (s *NetworkSearcher) minRelevance() float64 {
	if s.MinRelevance <= 0 {
		return spotlight.DefaultMinRelevance
	}
	return s.MinRelevance
}

func (s *NetworkSearcher) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
