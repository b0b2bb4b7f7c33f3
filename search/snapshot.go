package search

import (
	"context"
	"fmt"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.LocalState = (*Snapshot)(nil)

// Snapshot is an immutable copy of the local collections searched by the
// instant matcher.
type Snapshot struct {
	players   []*spotlight.Player
	instances []*spotlight.Instance
	history   []string
}

// NewSnapshot returns a snapshot over the given collections.
func NewSnapshot(players []*spotlight.Player, instances []*spotlight.Instance, history []string) *Snapshot {
	return &Snapshot{players: players, instances: instances, history: history}
}

// LoadSnapshot reads players, instances and routing history from their services.
func LoadSnapshot(ctx context.Context, players spotlight.PlayerService, instances spotlight.InstanceService, history spotlight.HistoryService) (*Snapshot, error) {
	ps, err := players.FindPlayers(ctx, spotlight.PlayerFilter{})
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	is, err := instances.FindInstances(ctx, spotlight.InstanceFilter{})
	if err != nil {
		return nil, fmt.Errorf("load instances: %w", err)
	}
	hs, err := history.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return NewSnapshot(ps, is, hs), nil
}

func (s *Snapshot) Players() []*spotlight.Player     { return s.players }
func (s *Snapshot) Instances() []*spotlight.Instance { return s.instances }
func (s *Snapshot) History() []string                { return s.history }
