package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.HistoryService = (*HistoryService)(nil)

// HistoryService implements spotlight.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// Visit appends route unless it is already the most recent entry.
func (s *HistoryService) Visit(ctx context.Context, route string) error {
	if route == "" {
		return spotlight.Errorf(spotlight.EINVALID, "route required")
	}

	var last string
	err := s.db.QueryRowContext(ctx, "SELECT route FROM history ORDER BY id DESC LIMIT 1").Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if last == route {
		return nil
	}

	_, err = s.db.ExecContext(ctx, "INSERT INTO history (route, visited_at) VALUES (?, ?)",
		route, formatTime(time.Now()))
	return err
}

// ListHistory returns visited routes, oldest first.
func (s *HistoryService) ListHistory(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT route FROM history ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []string
	for rows.Next() {
		var route string
		if err := rows.Scan(&route); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// RemoveHistory deletes every route starting with prefix.
func (s *HistoryService) RemoveHistory(ctx context.Context, prefix string) error {
	if prefix == "" {
		return spotlight.Errorf(spotlight.EINVALID, "prefix required")
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE substr(route, 1, ?) = ?",
		utf8.RuneCountInString(prefix), prefix)
	return err
}

// ReplaceHistory replaces every occurrence of src with tgt in stored routes,
// e.g. after an instance is renamed.
func (s *HistoryService) ReplaceHistory(ctx context.Context, src, tgt string) error {
	if src == "" {
		return spotlight.Errorf(spotlight.EINVALID, "source text required")
	}
	_, err := s.db.ExecContext(ctx, "UPDATE history SET route = replace(route, ?, ?) WHERE instr(route, ?) > 0",
		src, tgt, src)
	return err
}
