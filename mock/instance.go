package mock

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.InstanceService = (*InstanceService)(nil)

// InstanceService is a mock implementation of spotlight.InstanceService.
type InstanceService struct {
	CreateInstanceFn   func(ctx context.Context, instance *spotlight.Instance) error
	FindInstanceByIDFn func(ctx context.Context, id string) (*spotlight.Instance, error)
	FindInstancesFn    func(ctx context.Context, filter spotlight.InstanceFilter) ([]*spotlight.Instance, error)
	DeleteInstanceFn   func(ctx context.Context, id string) error
}

func (s *InstanceService) CreateInstance(ctx context.Context, instance *spotlight.Instance) error {
	return s.CreateInstanceFn(ctx, instance)
}

func (s *InstanceService) FindInstanceByID(ctx context.Context, id string) (*spotlight.Instance, error) {
	return s.FindInstanceByIDFn(ctx, id)
}

func (s *InstanceService) FindInstances(ctx context.Context, filter spotlight.InstanceFilter) ([]*spotlight.Instance, error) {
	return s.FindInstancesFn(ctx, filter)
}

func (s *InstanceService) DeleteInstance(ctx context.Context, id string) error {
	return s.DeleteInstanceFn(ctx, id)
}
