// Package slog provides logging decorators for spotlight services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spotlight"
)

// Ensure LoggingResourceService implements spotlight.ResourceService.
var _ spotlight.ResourceService = (*LoggingResourceService)(nil)

// LoggingResourceService wraps a ResourceService with debug logging.
type LoggingResourceService struct {
	next   spotlight.ResourceService
	logger *slog.Logger
}

// NewLoggingResourceService creates a new LoggingResourceService.
func NewLoggingResourceService(next spotlight.ResourceService, logger *slog.Logger) *LoggingResourceService {
	return &LoggingResourceService{next: next, logger: logger}
}

// FetchResourceListByName delegates to the wrapped service and logs the request.
func (s *LoggingResourceService) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (page *spotlight.ResourcePage, err error) {
	defer func(begin time.Time) {
		count := 0
		if page != nil {
			count = len(page.List)
		}
		s.logger.Debug("resource search",
			"source", string(query.Source),
			"type", string(query.Type),
			"query", query.Query,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchResourceListByName(ctx, query)
}

// Ensure LoggingResourceDescriber implements spotlight.ResourceDescriber.
var _ spotlight.ResourceDescriber = (*LoggingResourceDescriber)(nil)

// LoggingResourceDescriber wraps a ResourceDescriber with debug logging.
type LoggingResourceDescriber struct {
	next   spotlight.ResourceDescriber
	logger *slog.Logger
}

// NewLoggingResourceDescriber creates a new LoggingResourceDescriber.
func NewLoggingResourceDescriber(next spotlight.ResourceDescriber, logger *slog.Logger) *LoggingResourceDescriber {
	return &LoggingResourceDescriber{next: next, logger: logger}
}

// FetchResourceDescription delegates to the wrapped describer and logs the body size.
func (d *LoggingResourceDescriber) FetchResourceDescription(ctx context.Context, source spotlight.Source, id string) (body string, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("resource description",
			"source", string(source),
			"id", id,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.FetchResourceDescription(ctx, source, id)
}
