package sqlite

import (
	"context"
	"crypto/md5"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/spotlight"
	"github.com/google/uuid"
)

var _ spotlight.PlayerService = (*PlayerService)(nil)

// PlayerService implements spotlight.PlayerService using SQLite.
type PlayerService struct {
	db *DB
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(db *DB) *PlayerService {
	return &PlayerService{db: db}
}

// OfflineUUID derives the game's offline-mode UUID (version 3) for a player name.
func OfflineUUID(name string) string {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	return uuid.UUID(sum).String()
}

// CreatePlayer creates a new player. Offline players without a UUID get
// their offline-mode UUID; other players get a random one.
func (s *PlayerService) CreatePlayer(ctx context.Context, player *spotlight.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}

	player.ID = uuid.New().String()
	if player.UUID == "" {
		if player.PlayerType == spotlight.PlayerOffline {
			player.UUID = OfflineUUID(player.Name)
		} else {
			player.UUID = uuid.New().String()
		}
	}
	player.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, name, uuid, player_type, auth_server, auth_account, avatar, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, player.ID, player.Name, player.UUID, string(player.PlayerType), player.AuthServer,
		player.AuthAccount, player.Avatar, formatTime(player.CreatedAt))

	return err
}

// FindPlayerByID retrieves a player by ID.
func (s *PlayerService) FindPlayerByID(ctx context.Context, id string) (*spotlight.Player, error) {
	players, err := s.FindPlayers(ctx, spotlight.PlayerFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, spotlight.Errorf(spotlight.ENOTFOUND, "player not found")
	}
	return players[0], nil
}

// FindPlayers retrieves players matching the filter in creation order.
func (s *PlayerService) FindPlayers(ctx context.Context, filter spotlight.PlayerFilter) ([]*spotlight.Player, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, uuid, player_type, auth_server, auth_account, avatar, created_at FROM players WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*spotlight.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

// DeletePlayer permanently removes a player.
func (s *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return spotlight.Errorf(spotlight.ENOTFOUND, "player not found")
	}

	return nil
}

func scanPlayer(rows *sql.Rows) (*spotlight.Player, error) {
	var player spotlight.Player
	var playerType, createdAt string

	if err := rows.Scan(&player.ID, &player.Name, &player.UUID, &playerType, &player.AuthServer,
		&player.AuthAccount, &player.Avatar, &createdAt); err != nil {
		return nil, err
	}
	player.PlayerType = spotlight.PlayerType(playerType)

	var err error
	if player.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &player, nil
}
