package search

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var (
	_ spotlight.ResourceService   = (*SourceRouter)(nil)
	_ spotlight.ResourceDescriber = (*SourceRouter)(nil)
)

// SourceRouter dispatches resource requests to the service registered for
// the requested source.
type SourceRouter struct {
	Resources  map[spotlight.Source]spotlight.ResourceService
	Describers map[spotlight.Source]spotlight.ResourceDescriber
}

// FetchResourceListByName forwards to the service for query.Source.
func (r *SourceRouter) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
	svc, ok := r.Resources[query.Source]
	if !ok {
		return nil, spotlight.Errorf(spotlight.EINVALID, "no resource service for source %q", query.Source)
	}
	return svc.FetchResourceListByName(ctx, query)
}

// FetchResourceDescription forwards to the describer for source.
func (r *SourceRouter) FetchResourceDescription(ctx context.Context, source spotlight.Source, id string) (string, error) {
	d, ok := r.Describers[source]
	if !ok {
		return "", spotlight.Errorf(spotlight.EINVALID, "no resource describer for source %q", source)
	}
	return d.FetchResourceDescription(ctx, source, id)
}
