package spotlight

import "context"

// HistoryService records the routes the user has visited.
type HistoryService interface {
	// Visit appends a route. Visiting the most recent route again is a no-op.
	Visit(ctx context.Context, route string) error

	// ListHistory returns visited routes, oldest first.
	ListHistory(ctx context.Context) ([]string, error)

	// RemoveHistory deletes every route starting with prefix.
	RemoveHistory(ctx context.Context, prefix string) error

	// ReplaceHistory replaces every occurrence of src with tgt in stored routes.
	ReplaceHistory(ctx context.Context, src, tgt string) error
}

// LocalState exposes the already-loaded collections the instant matcher scans.
type LocalState interface {
	Players() []*Player
	Instances() []*Instance
	History() []string
}
