package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.Host = (*printHost)(nil)

// printHost stands in for the launcher UI: it prints activations and
// records navigations in the routing history.
type printHost struct {
	w       io.Writer
	history spotlight.HistoryService
}

func (h *printHost) Navigate(ctx context.Context, route string) error {
	fmt.Fprintf(h.w, "navigate %s\n", route)
	if h.history == nil {
		return nil
	}
	return h.history.Visit(ctx, route)
}

func (h *printHost) OpenModal(ctx context.Context, intent spotlight.Intent) error {
	switch {
	case intent.Resource != nil:
		fmt.Fprintf(h.w, "open %s %s (%s %s)\n", intent.Modal, intent.Resource.Name, intent.Source, intent.Resource.ID)
	case intent.Type != "":
		fmt.Fprintf(h.w, "open %s query=%q source=%s type=%s\n", intent.Modal, intent.Query, intent.Source, intent.Type)
	default:
		fmt.Fprintf(h.w, "open %s query=%q source=%s\n", intent.Modal, intent.Query, intent.Source)
	}
	return nil
}
