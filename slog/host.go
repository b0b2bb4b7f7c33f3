package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/spotlight"
)

// Ensure LoggingHost implements spotlight.Host.
var _ spotlight.Host = (*LoggingHost)(nil)

// LoggingHost wraps a Host with logging of activated targets.
type LoggingHost struct {
	next   spotlight.Host
	logger *slog.Logger
}

// NewLoggingHost creates a new LoggingHost.
func NewLoggingHost(next spotlight.Host, logger *slog.Logger) *LoggingHost {
	return &LoggingHost{next: next, logger: logger}
}

// Navigate delegates to the wrapped host and logs the route.
func (h *LoggingHost) Navigate(ctx context.Context, route string) (err error) {
	defer func() {
		h.logger.Info("navigate", "route", route, "err", err)
	}()
	return h.next.Navigate(ctx, route)
}

// OpenModal delegates to the wrapped host and logs the modal intent.
func (h *LoggingHost) OpenModal(ctx context.Context, intent spotlight.Intent) (err error) {
	defer func() {
		h.logger.Info("open modal", "modal", intent.Modal, "err", err)
	}()
	return h.next.OpenModal(ctx, intent)
}
