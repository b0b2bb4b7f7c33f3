package mock

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.PlayerService = (*PlayerService)(nil)

// PlayerService is a mock implementation of spotlight.PlayerService.
type PlayerService struct {
	CreatePlayerFn   func(ctx context.Context, player *spotlight.Player) error
	FindPlayerByIDFn func(ctx context.Context, id string) (*spotlight.Player, error)
	FindPlayersFn    func(ctx context.Context, filter spotlight.PlayerFilter) ([]*spotlight.Player, error)
	DeletePlayerFn   func(ctx context.Context, id string) error
}

func (s *PlayerService) CreatePlayer(ctx context.Context, player *spotlight.Player) error {
	return s.CreatePlayerFn(ctx, player)
}

func (s *PlayerService) FindPlayerByID(ctx context.Context, id string) (*spotlight.Player, error) {
	return s.FindPlayerByIDFn(ctx, id)
}

func (s *PlayerService) FindPlayers(ctx context.Context, filter spotlight.PlayerFilter) ([]*spotlight.Player, error) {
	return s.FindPlayersFn(ctx, filter)
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	return s.DeletePlayerFn(ctx, id)
}
