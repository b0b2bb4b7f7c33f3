package mock

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of spotlight.HistoryService.
type HistoryService struct {
	VisitFn          func(ctx context.Context, route string) error
	ListHistoryFn    func(ctx context.Context) ([]string, error)
	RemoveHistoryFn  func(ctx context.Context, prefix string) error
	ReplaceHistoryFn func(ctx context.Context, src, tgt string) error
}

func (s *HistoryService) Visit(ctx context.Context, route string) error {
	return s.VisitFn(ctx, route)
}

func (s *HistoryService) ListHistory(ctx context.Context) ([]string, error) {
	return s.ListHistoryFn(ctx)
}

func (s *HistoryService) RemoveHistory(ctx context.Context, prefix string) error {
	return s.RemoveHistoryFn(ctx, prefix)
}

func (s *HistoryService) ReplaceHistory(ctx context.Context, src, tgt string) error {
	return s.ReplaceHistoryFn(ctx, src, tgt)
}
