package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/spotlight"
	"github.com/google/uuid"
)

var _ spotlight.InstanceService = (*InstanceService)(nil)

// InstanceService implements spotlight.InstanceService using SQLite.
type InstanceService struct {
	db *DB
}

// NewInstanceService creates a new InstanceService.
func NewInstanceService(db *DB) *InstanceService {
	return &InstanceService{db: db}
}

// CreateInstance creates a new instance. An empty loader type is stored as Unknown.
func (s *InstanceService) CreateInstance(ctx context.Context, instance *spotlight.Instance) error {
	if err := instance.Validate(); err != nil {
		return err
	}

	instance.ID = uuid.New().String()
	if instance.ModLoader.LoaderType == "" {
		instance.ModLoader.LoaderType = spotlight.LoaderUnknown
	}
	instance.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO instances (id, name, version, loader_type, loader_version, icon_src, starred, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, instance.ID, instance.Name, instance.Version, string(instance.ModLoader.LoaderType),
		instance.ModLoader.Version, instance.IconSrc, boolToInt(instance.Starred), formatTime(instance.CreatedAt))

	return err
}

// FindInstanceByID retrieves an instance by ID.
func (s *InstanceService) FindInstanceByID(ctx context.Context, id string) (*spotlight.Instance, error) {
	instances, err := s.FindInstances(ctx, spotlight.InstanceFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, spotlight.Errorf(spotlight.ENOTFOUND, "instance not found")
	}
	return instances[0], nil
}

// FindInstances retrieves instances matching the filter, starred first,
// then in creation order.
func (s *InstanceService) FindInstances(ctx context.Context, filter spotlight.InstanceFilter) ([]*spotlight.Instance, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, version, loader_type, loader_version, icon_src, starred, created_at FROM instances WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY starred DESC, rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instances []*spotlight.Instance
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}

	return instances, rows.Err()
}

// DeleteInstance permanently removes an instance.
func (s *InstanceService) DeleteInstance(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM instances WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return spotlight.Errorf(spotlight.ENOTFOUND, "instance not found")
	}

	return nil
}

func scanInstance(rows *sql.Rows) (*spotlight.Instance, error) {
	var instance spotlight.Instance
	var loaderType, createdAt string
	var starred int

	if err := rows.Scan(&instance.ID, &instance.Name, &instance.Version, &loaderType,
		&instance.ModLoader.Version, &instance.IconSrc, &starred, &createdAt); err != nil {
		return nil, err
	}
	instance.ModLoader.LoaderType = spotlight.ModLoaderType(loaderType)
	instance.Starred = starred != 0

	var err error
	if instance.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &instance, nil
}
