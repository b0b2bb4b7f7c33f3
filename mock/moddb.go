package mock

import (
	"context"

	"github.com/fwojciec/spotlight"
)

var _ spotlight.ModDatabase = (*ModDatabase)(nil)

// ModDatabase is a mock implementation of spotlight.ModDatabase.
type ModDatabase struct {
	CreateModRecordsFn    func(ctx context.Context, records []*spotlight.ModRecord) error
	FindModRecordBySlugFn func(ctx context.Context, slug string, source spotlight.Source) (*spotlight.ModRecord, error)
	FindModRecordsFn      func(ctx context.Context) ([]*spotlight.ModRecord, error)
}

func (d *ModDatabase) CreateModRecords(ctx context.Context, records []*spotlight.ModRecord) error {
	return d.CreateModRecordsFn(ctx, records)
}

func (d *ModDatabase) FindModRecordBySlug(ctx context.Context, slug string, source spotlight.Source) (*spotlight.ModRecord, error) {
	return d.FindModRecordBySlugFn(ctx, slug, source)
}

func (d *ModDatabase) FindModRecords(ctx context.Context) ([]*spotlight.ModRecord, error) {
	return d.FindModRecordsFn(ctx)
}

var _ spotlight.QueryTranslator = (*QueryTranslator)(nil)

// QueryTranslator is a mock implementation of spotlight.QueryTranslator.
type QueryTranslator struct {
	TranslateQueryFn func(ctx context.Context, query string) (string, error)
}

func (t *QueryTranslator) TranslateQuery(ctx context.Context, query string) (string, error) {
	return t.TranslateQueryFn(ctx, query)
}
