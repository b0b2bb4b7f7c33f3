package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spotlight"
)

// Ensure LoggingSearcher implements spotlight.Searcher.
var _ spotlight.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging of each network search.
type LoggingSearcher struct {
	next   spotlight.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next spotlight.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher. Canceled searches are logged at
// debug level since every keystroke cancels the previous one.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []spotlight.Result, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil && ctx.Err() != nil {
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "network search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
