package search

import (
	"context"
	"sync"

	"github.com/fwojciec/spotlight"
)

// Spotlight is the aggregator behind the search modal. It combines instant
// matches over local state, the orchestrator's committed network results,
// and resource-search shortcuts.
type Spotlight struct {
	network *Orchestrator

	mu    sync.RWMutex
	local spotlight.LocalState
}

// NewSpotlight returns a Spotlight reading local state and driving network.
func NewSpotlight(local spotlight.LocalState, network *Orchestrator) *Spotlight {
	return &Spotlight{local: local, network: network}
}

// SetLocalState replaces the local collections searched by the instant matcher.
func (s *Spotlight) SetLocalState(local spotlight.LocalState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = local
}

// SetQuery updates the query and schedules a network search for it.
func (s *Spotlight) SetQuery(ctx context.Context, query string) {
	s.network.Update(ctx, query)
}

// Query returns the current query.
func (s *Spotlight) Query() string {
	return s.network.Status().Query
}

// Searching reports whether a network search is pending or in flight.
func (s *Spotlight) Searching() bool {
	return s.network.Status().State != StateIdle
}

// Results returns instant, network and shortcut results for the current
// query, in that order.
func (s *Spotlight) Results() []spotlight.Result {
	status := s.network.Status()

	s.mu.RLock()
	local := s.local
	s.mu.RUnlock()

	return Merge(MatchInstant(local, status.Query), status.Results, Shortcuts(status.Query))
}

// Groups returns Results bucketed by kind.
func (s *Spotlight) Groups() []*spotlight.Group {
	return spotlight.GroupResults(s.Results())
}

// Select activates r through host and then closes the search.
func (s *Spotlight) Select(ctx context.Context, host spotlight.Host, r spotlight.Result) error {
	if err := spotlight.Activate(ctx, host, r); err != nil {
		return err
	}
	s.Close()
	return nil
}

// SelectFirst activates the first result, as the Enter key does.
// Returns ENOTFOUND when there are no results.
func (s *Spotlight) SelectFirst(ctx context.Context, host spotlight.Host) error {
	results := s.Results()
	if len(results) == 0 {
		return spotlight.Errorf(spotlight.ENOTFOUND, "no results to select")
	}
	return s.Select(ctx, host, results[0])
}

// Wait blocks until no network search is pending or in flight.
func (s *Spotlight) Wait(ctx context.Context) error {
	return s.network.Wait(ctx)
}

// Close cancels pending network work and clears the query.
func (s *Spotlight) Close() {
	s.network.Close()
}
