package main_test

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/fwojciec/spotlight"
	main "github.com/fwojciec/spotlight/cmd/spotlight"
	"github.com/fwojciec/spotlight/mock"
)

// testDeps returns dependencies backed by in-memory mocks holding players,
// instances and history.
func testDeps(players []*spotlight.Player, instances []*spotlight.Instance, history []string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	visited := append([]string(nil), history...)

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
		Config: spotlight.DefaultConfig(),
		Players: &mock.PlayerService{
			FindPlayersFn: func(_ context.Context, _ spotlight.PlayerFilter) ([]*spotlight.Player, error) {
				return players, nil
			},
		},
		Instances: &mock.InstanceService{
			FindInstancesFn: func(_ context.Context, _ spotlight.InstanceFilter) ([]*spotlight.Instance, error) {
				return instances, nil
			},
		},
		History: &mock.HistoryService{
			ListHistoryFn: func(_ context.Context) ([]string, error) {
				return visited, nil
			},
			VisitFn: func(_ context.Context, route string) error {
				visited = append(visited, route)
				return nil
			},
		},
	}
	return deps, stdout, stderr
}
