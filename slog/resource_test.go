package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/mock"
	spotslog "github.com/fwojciec/spotlight/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingResourceService_FetchResourceListByName(t *testing.T) {
	t.Parallel()

	t.Run("logs search with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ResourceService{
			FetchResourceListByNameFn: func(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
				return &spotlight.ResourcePage{List: []*spotlight.Resource{{ID: "a"}, {ID: "b"}}}, nil
			},
		}

		svc := spotslog.NewLoggingResourceService(inner, debugLogger(&buf))
		page, err := svc.FetchResourceListByName(context.Background(), spotlight.ResourceQuery{
			Source: spotlight.SourceModrinth,
			Type:   spotlight.ResourceMod,
			Query:  "sodium",
		})

		require.NoError(t, err)
		assert.Len(t, page.List, 2)
		output := buf.String()
		assert.Contains(t, output, "resource search")
		assert.Contains(t, output, "source=Modrinth")
		assert.Contains(t, output, "query=sodium")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ResourceService{
			FetchResourceListByNameFn: func(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := spotslog.NewLoggingResourceService(inner, debugLogger(&buf))
		_, err := svc.FetchResourceListByName(context.Background(), spotlight.ResourceQuery{Source: spotlight.SourceCurseForge})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ResourceService{
			FetchResourceListByNameFn: func(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
				return &spotlight.ResourcePage{}, nil
			},
		}

		svc := spotslog.NewLoggingResourceService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := svc.FetchResourceListByName(context.Background(), spotlight.ResourceQuery{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingResourceDescriber_FetchResourceDescription(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ResourceDescriber{
		FetchResourceDescriptionFn: func(ctx context.Context, source spotlight.Source, id string) (string, error) {
			return "# Sodium", nil
		},
	}

	d := spotslog.NewLoggingResourceDescriber(inner, debugLogger(&buf))
	body, err := d.FetchResourceDescription(context.Background(), spotlight.SourceModrinth, "AANobbMI")

	require.NoError(t, err)
	assert.Equal(t, "# Sodium", body)
	output := buf.String()
	assert.Contains(t, output, "resource description")
	assert.Contains(t, output, "id=AANobbMI")
	assert.Contains(t, output, "bytes=8")
}
