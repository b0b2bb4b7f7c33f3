package mock

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.Host = (*Host)(nil)

// Host is a mock implementation of spotlight.Host.
type Host struct {
	NavigateFn  func(ctx context.Context, route string) error
	OpenModalFn func(ctx context.Context, intent spotlight.Intent) error
}

func (h *Host) Navigate(ctx context.Context, route string) error {
	return h.NavigateFn(ctx, route)
}

func (h *Host) OpenModal(ctx context.Context, intent spotlight.Intent) error {
	return h.OpenModalFn(ctx, intent)
}

var _ spotlight.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of spotlight.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]spotlight.Result, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]spotlight.Result, error) {
	return s.SearchFn(ctx, query)
}
