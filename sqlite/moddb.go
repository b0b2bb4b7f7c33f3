package sqlite

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.ModDatabase = (*ModDatabase)(nil)

// ModDatabase implements spotlight.ModDatabase using SQLite.
type ModDatabase struct {
	db *DB
}

// NewModDatabase creates a new ModDatabase.
func NewModDatabase(db *DB) *ModDatabase {
	return &ModDatabase{db: db}
}

// CreateModRecords inserts or replaces records in a single transaction.
func (d *ModDatabase) CreateModRecords(ctx context.Context, records []*spotlight.ModRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := d.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO mods (mcmod_id, curseforge_slug, modrinth_slug, name, subname, abbr)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.ID, r.CurseForgeSlug, r.ModrinthSlug, r.Name, r.Subname, r.Abbr); err != nil {
			return fmt.Errorf("insert mod %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// FindModRecordBySlug returns the record mapped to slug on source.
func (d *ModDatabase) FindModRecordBySlug(ctx context.Context, slug string, source spotlight.Source) (*spotlight.ModRecord, error) {
	var column string
	switch source {
	case spotlight.SourceCurseForge:
		column = "curseforge_slug"
	case spotlight.SourceModrinth:
		column = "modrinth_slug"
	default:
		return nil, spotlight.Errorf(spotlight.EINVALID, "unknown resource source %q", source)
	}
	if slug == "" {
		return nil, spotlight.Errorf(spotlight.ENOTFOUND, "mod record not found")
	}

	var r spotlight.ModRecord
	err := d.db.QueryRowContext(ctx, `
		SELECT mcmod_id, curseforge_slug, modrinth_slug, name, subname, abbr
		FROM mods
		WHERE `+column+` = ?
		ORDER BY mcmod_id
		LIMIT 1
	`, slug).Scan(&r.ID, &r.CurseForgeSlug, &r.ModrinthSlug, &r.Name, &r.Subname, &r.Abbr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, spotlight.Errorf(spotlight.ENOTFOUND, "mod record not found")
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindModRecords returns every record ordered by ID.
func (d *ModDatabase) FindModRecords(ctx context.Context) ([]*spotlight.ModRecord, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT mcmod_id, curseforge_slug, modrinth_slug, name, subname, abbr
		FROM mods
		ORDER BY mcmod_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*spotlight.ModRecord
	for rows.Next() {
		var r spotlight.ModRecord
		if err := rows.Scan(&r.ID, &r.CurseForgeSlug, &r.ModrinthSlug, &r.Name, &r.Subname, &r.Abbr); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

// ImportCSV reads records with the columns
// mcmod_id,curseforge_slug,modrinth_slug,name,subname,abbr and stores them.
// A leading header row is skipped. Returns the number of imported records.
func (d *ModDatabase) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	records, err := ParseModCSV(r)
	if err != nil {
		return 0, err
	}
	if err := d.CreateModRecords(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ParseModCSV parses mod records from CSV.
func ParseModCSV(r io.Reader) ([]*spotlight.ModRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []*spotlight.ModRecord
	for n := 1; ; n++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, spotlight.Errorf(spotlight.EINVALID, "csv row %d: %v", n, err)
		}
		if n == 1 && strings.EqualFold(strings.TrimPrefix(row[0], "\ufeff"), "mcmod_id") {
			continue
		}
		if len(row) < 4 {
			return nil, spotlight.Errorf(spotlight.EINVALID, "csv row %d: expected at least 4 columns, got %d", n, len(row))
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, spotlight.Errorf(spotlight.EINVALID, "csv row %d: invalid mcmod id %q", n, row[0])
		}
		rec := &spotlight.ModRecord{
			ID:             id,
			CurseForgeSlug: strings.TrimSpace(row[1]),
			ModrinthSlug:   strings.TrimSpace(row[2]),
			Name:           strings.TrimSpace(row[3]),
		}
		if len(row) > 4 {
			rec.Subname = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			rec.Abbr = strings.TrimSpace(row[5])
		}
		if err := rec.Validate(); err != nil {
			return nil, spotlight.Errorf(spotlight.EINVALID, "csv row %d: %s", n, spotlight.ErrorMessage(err))
		}
		records = append(records, rec)
	}
	return records, nil
}
