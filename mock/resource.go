package mock

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.ResourceService = (*ResourceService)(nil)

// ResourceService is a mock implementation of spotlight.ResourceService.
type ResourceService struct {
	FetchResourceListByNameFn func(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error)
}

func (s *ResourceService) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
	return s.FetchResourceListByNameFn(ctx, query)
}

var _ spotlight.ResourceDescriber = (*ResourceDescriber)(nil)

// ResourceDescriber is a mock implementation of spotlight.ResourceDescriber.
type ResourceDescriber struct {
	FetchResourceDescriptionFn func(ctx context.Context, source spotlight.Source, id string) (string, error)
}

func (d *ResourceDescriber) FetchResourceDescription(ctx context.Context, source spotlight.Source, id string) (string, error) {
	return d.FetchResourceDescriptionFn(ctx, source, id)
}
