package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/search"
)

// offlineSearcher finds nothing, for --offline.
type offlineSearcher struct{}

func (offlineSearcher) Search(context.Context, string) ([]spotlight.Result, error) {
	return nil, nil
}

// newSpotlight loads local state and builds the aggregator over deps.Searcher.
func newSpotlight(deps *Dependencies, offline bool, debounce time.Duration, opts ...search.Option) (*search.Spotlight, error) {
	local, err := search.LoadSnapshot(deps.Ctx, deps.Players, deps.Instances, deps.History)
	if err != nil {
		return nil, err
	}

	var searcher spotlight.Searcher = offlineSearcher{}
	if !offline && deps.Searcher != nil {
		searcher = deps.Searcher
	}
	if deps.Logger != nil {
		opts = append([]search.Option{search.WithLogger(deps.Logger)}, opts...)
	}
	network := search.NewOrchestrator(searcher, debounce, opts...)
	return search.NewSpotlight(local, network), nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	// A one-shot query has no keystrokes to debounce.
	s, err := newSpotlight(deps, c.Offline, 0)
	if err != nil {
		return printError(deps, err)
	}
	defer s.Close()

	s.SetQuery(deps.Ctx, c.Query)

	ctx, cancel := context.WithTimeout(deps.Ctx, c.timeout())
	defer cancel()
	if err := s.Wait(ctx); err != nil {
		fmt.Fprintln(deps.Stderr, "warning: network search did not finish; showing partial results")
	}

	results := s.Results()
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	groups := spotlight.GroupResults(results)
	showTranslation := deps.Config.ShowTranslation()
	if c.Plain {
		fmt.Fprintln(deps.Stdout, spotlight.FormatGroups(groups, showTranslation))
	} else {
		newRenderer(deps.Color).Render(deps.Stdout, groups, showTranslation)
	}

	host := &printHost{w: deps.Stdout, history: deps.History}
	switch {
	case c.Select > 0:
		ordered := spotlight.FlattenGroups(groups)
		if c.Select > len(ordered) {
			err := spotlight.Errorf(spotlight.EINVALID, "no result at position %d", c.Select)
			return printError(deps, err)
		}
		if err := s.Select(deps.Ctx, host, ordered[c.Select-1]); err != nil {
			return printError(deps, err)
		}
	case c.Enter:
		if err := s.SelectFirst(deps.Ctx, host); err != nil {
			return printError(deps, err)
		}
	}
	return nil
}

func (c *SearchCmd) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 15 * time.Second
	}
	return c.Timeout
}
