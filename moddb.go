package spotlight

import (
	"context"
	"strings"
)

// ModRecord is an entry of the community mod translation database.
type ModRecord struct {
	ID             int    `json:"mcmodId"`
	CurseForgeSlug string `json:"curseforgeSlug,omitempty"`
	ModrinthSlug   string `json:"modrinthSlug,omitempty"`
	Name           string `json:"name"`
	Subname        string `json:"subname,omitempty"`
	Abbr           string `json:"abbr,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ModRecord) Validate() error {
	if r.ID <= 0 {
		return Errorf(EINVALID, "mod record id must be positive")
	}
	if r.Name == "" {
		return Errorf(EINVALID, "mod record name required")
	}
	return nil
}

// Slug returns the record's slug on the given source.
func (r *ModRecord) Slug(source Source) string {
	switch source {
	case SourceCurseForge:
		return r.CurseForgeSlug
	case SourceModrinth:
		return r.ModrinthSlug
	}
	return ""
}

// DisplayName renders "[abbr] name (subname)", omitting empty parts.
func (r *ModRecord) DisplayName() string {
	var b strings.Builder
	if abbr := strings.TrimSpace(r.Abbr); abbr != "" {
		b.WriteString("[" + abbr + "] ")
	}
	b.WriteString(r.Name)
	if strings.TrimSpace(r.Subname) != "" {
		b.WriteString(" (" + r.Subname + ")")
	}
	return b.String()
}

// ModDatabase stores translated mod names keyed by source slugs.
type ModDatabase interface {
	// CreateModRecords inserts or replaces records.
	CreateModRecords(ctx context.Context, records []*ModRecord) error

	// FindModRecordBySlug returns the record mapped to slug on source.
	// Returns ENOTFOUND if no record matches.
	FindModRecordBySlug(ctx context.Context, slug string, source Source) (*ModRecord, error)

	// FindModRecords returns every record, ordered by ID.
	FindModRecords(ctx context.Context) ([]*ModRecord, error)
}

// QueryTranslator rewrites a user query into a form the sources understand.
type QueryTranslator interface {
	TranslateQuery(ctx context.Context, query string) (string, error)
}
