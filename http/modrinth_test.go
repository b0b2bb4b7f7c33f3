package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/spotlight"
	spotlighthttp "github.com/fwojciec/spotlight/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modrinthSearchBody = `{
  "hits": [
    {
      "project_id": "AANobbMI",
      "project_type": "mod",
      "slug": "sodium",
      "title": "Sodium",
      "description": "The fastest rendering optimization mod",
      "categories": ["optimization", "fabric"],
      "downloads": 54000000,
      "icon_url": "https://cdn.modrinth.com/sodium.png",
      "date_modified": "2024-05-01T12:00:00Z"
    }
  ],
  "total_hits": 42,
  "offset": 3,
  "limit": 3
}`

func TestModrinthService_FetchResourceListByName(t *testing.T) {
	t.Parallel()

	query := spotlight.ResourceQuery{
		Type:        spotlight.ResourceMod,
		Query:       "sodium",
		GameVersion: "1.20.1",
		Tag:         spotlight.AllFilter,
		SortBy:      "downloads",
		Source:      spotlight.SourceModrinth,
		Page:        1,
		PageSize:    3,
	}

	t.Run("sends search parameters and maps hits", func(t *testing.T) {
		t.Parallel()

		var got *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(modrinthSearchBody))
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL(server.URL), spotlighthttp.WithUserAgent("test-agent"))

		page, err := svc.FetchResourceListByName(context.Background(), query)
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Equal(t, "/search", got.URL.Path)
		assert.Equal(t, "test-agent", got.Header.Get("User-Agent"))
		params := got.URL.Query()
		assert.Equal(t, "sodium", params.Get("query"))
		assert.Equal(t, "3", params.Get("offset"))
		assert.Equal(t, "3", params.Get("limit"))
		assert.Equal(t, "downloads", params.Get("index"))
		var facets [][]string
		require.NoError(t, json.Unmarshal([]byte(params.Get("facets")), &facets))
		assert.Equal(t, [][]string{{"project_type:mod"}, {"versions:1.20.1"}}, facets)

		assert.Equal(t, 42, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 3, page.PageSize)
		require.Len(t, page.List, 1)
		assert.Equal(t, &spotlight.Resource{
			ID:          "AANobbMI",
			Type:        spotlight.ResourceMod,
			Source:      spotlight.SourceModrinth,
			Slug:        "sodium",
			Name:        "Sodium",
			Description: "The fastest rendering optimization mod",
			IconSrc:     "https://cdn.modrinth.com/sodium.png",
			Tags:        []string{"optimization", "fabric"},
			Downloads:   54000000,
			LastUpdated: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			WebsiteURL:  "https://modrinth.com/mod/sodium",
		}, page.List[0])
	})

	t.Run("adds category facet for a tag", func(t *testing.T) {
		t.Parallel()

		var facets string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			facets = r.URL.Query().Get("facets")
			_, _ = w.Write([]byte(`{"hits":[],"total_hits":0,"offset":0,"limit":3}`))
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL(server.URL))
		q := query
		q.GameVersion = spotlight.AllFilter
		q.Tag = "optimization"

		_, err := svc.FetchResourceListByName(context.Background(), q)

		require.NoError(t, err)
		assert.JSONEq(t, `[["project_type:mod"],["categories:optimization"]]`, facets)
	})

	t.Run("rejects worlds", func(t *testing.T) {
		t.Parallel()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL("http://127.0.0.1:0"))
		q := query
		q.Type = spotlight.ResourceWorld

		_, err := svc.FetchResourceListByName(context.Background(), q)

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(err))
	})

	t.Run("non-2xx status is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL(server.URL))

		_, err := svc.FetchResourceListByName(context.Background(), query)

		require.Error(t, err)
		assert.Equal(t, spotlight.EUNAVAILABLE, spotlight.ErrorCode(err))
		assert.Contains(t, spotlight.ErrorMessage(err), "429")
	})

	t.Run("malformed body is internal", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL(server.URL))

		_, err := svc.FetchResourceListByName(context.Background(), query)

		assert.Equal(t, spotlight.EINTERNAL, spotlight.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(modrinthSearchBody))
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL(server.URL))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.FetchResourceListByName(ctx, query)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(modrinthSearchBody))
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(
			spotlighthttp.WithBaseURL(server.URL),
			spotlighthttp.WithTimeout(10*time.Millisecond),
		)

		_, err := svc.FetchResourceListByName(context.Background(), query)

		assert.Equal(t, spotlight.EUNAVAILABLE, spotlight.ErrorCode(err))
	})
}

func TestModrinthService_FetchResourceDescription(t *testing.T) {
	t.Parallel()

	t.Run("returns project body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/project/AANobbMI", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"AANobbMI","body":"# Sodium\n\nFast."}`))
		}))
		defer server.Close()

		svc := spotlighthttp.NewModrinthService(spotlighthttp.WithBaseURL(server.URL))

		body, err := svc.FetchResourceDescription(context.Background(), spotlight.SourceModrinth, "AANobbMI")

		require.NoError(t, err)
		assert.Equal(t, "# Sodium\n\nFast.", body)
	})

	t.Run("rejects other sources", func(t *testing.T) {
		t.Parallel()

		svc := spotlighthttp.NewModrinthService()

		_, err := svc.FetchResourceDescription(context.Background(), spotlight.SourceCurseForge, "394468")

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(err))
	})
}
