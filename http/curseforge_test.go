package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/spotlight"
	spotlighthttp "github.com/fwojciec/spotlight/http"
	"github.com/fwojciec/spotlight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const curseForgeSearchBody = `{
  "data": [
    {
      "id": 394468,
      "name": "Sodium",
      "slug": "sodium",
      "links": {"websiteUrl": "https://www.curseforge.com/minecraft/mc-mods/sodium"},
      "summary": "Rendering engine replacement",
      "logo": {"thumbnailUrl": "https://media.forgecdn.net/thumb.png", "url": "https://media.forgecdn.net/logo.png"},
      "categories": [{"name": "Performance"}],
      "downloadCount": 1200000,
      "dateModified": "2024-05-01T12:00:00Z"
    },
    {
      "id": 1,
      "name": "No Logo",
      "slug": "no-logo",
      "links": {"websiteUrl": ""},
      "summary": "",
      "logo": null,
      "categories": [],
      "downloadCount": 0,
      "dateModified": "2024-05-01T12:00:00Z"
    }
  ],
  "pagination": {"index": 6, "pageSize": 3, "resultCount": 2, "totalCount": 8}
}`

func TestCurseForgeService_FetchResourceListByName(t *testing.T) {
	t.Parallel()

	query := spotlight.ResourceQuery{
		Type:        spotlight.ResourceShaderPack,
		Query:       "sodium",
		GameVersion: spotlight.AllFilter,
		Tag:         spotlight.AllFilter,
		SortBy:      "Popularity",
		Source:      spotlight.SourceCurseForge,
		Page:        2,
		PageSize:    3,
	}

	t.Run("sends search parameters and api key", func(t *testing.T) {
		t.Parallel()

		var got *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			_, _ = w.Write([]byte(curseForgeSearchBody))
		}))
		defer server.Close()

		svc := spotlighthttp.NewCurseForgeService(nil,
			spotlighthttp.WithBaseURL(server.URL),
			spotlighthttp.WithAPIKey("secret"),
		)

		page, err := svc.FetchResourceListByName(context.Background(), query)
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Equal(t, "/v1/mods/search", got.URL.Path)
		assert.Equal(t, "secret", got.Header.Get("x-api-key"))
		params := got.URL.Query()
		assert.Equal(t, "432", params.Get("gameId"))
		assert.Equal(t, "6552", params.Get("classId"))
		assert.Equal(t, "sodium", params.Get("searchFilter"))
		assert.Equal(t, "2", params.Get("sortField"))
		assert.Equal(t, "desc", params.Get("sortOrder"))
		assert.Equal(t, "6", params.Get("index"))
		assert.Equal(t, "3", params.Get("pageSize"))
		assert.False(t, params.Has("gameVersion"))
		assert.False(t, params.Has("categoryId"))

		assert.Equal(t, 8, page.Total)
		assert.Equal(t, 2, page.Page)
		require.Len(t, page.List, 2)
		first := page.List[0]
		assert.Equal(t, "394468", first.ID)
		assert.Equal(t, spotlight.SourceCurseForge, first.Source)
		assert.Equal(t, spotlight.ResourceShaderPack, first.Type)
		assert.Equal(t, "Sodium", first.Name)
		assert.Equal(t, "Rendering engine replacement", first.Description)
		assert.Equal(t, "https://media.forgecdn.net/logo.png", first.IconSrc)
		assert.Equal(t, []string{"Performance"}, first.Tags)
		assert.Equal(t, int64(1200000), first.Downloads)
		assert.Empty(t, page.List[1].IconSrc)
	})

	t.Run("sorts by name ascending", func(t *testing.T) {
		t.Parallel()

		var params map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params = r.URL.Query()
			_, _ = w.Write([]byte(`{"data":[],"pagination":{"index":0,"pageSize":3,"resultCount":0,"totalCount":0}}`))
		}))
		defer server.Close()

		svc := spotlighthttp.NewCurseForgeService(nil, spotlighthttp.WithBaseURL(server.URL))
		q := query
		q.SortBy = "Name"
		q.GameVersion = "1.20.1"
		q.Tag = "411"

		_, err := svc.FetchResourceListByName(context.Background(), q)

		require.NoError(t, err)
		assert.Equal(t, []string{"4"}, params["sortField"])
		assert.Equal(t, []string{"asc"}, params["sortOrder"])
		assert.Equal(t, []string{"1.20.1"}, params["gameVersion"])
		assert.Equal(t, []string{"411"}, params["categoryId"])
	})

	t.Run("forbidden is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		svc := spotlighthttp.NewCurseForgeService(nil, spotlighthttp.WithBaseURL(server.URL))

		_, err := svc.FetchResourceListByName(context.Background(), query)

		assert.Equal(t, spotlight.EUNAVAILABLE, spotlight.ErrorCode(err))
	})

	t.Run("validates the query", func(t *testing.T) {
		t.Parallel()

		svc := spotlighthttp.NewCurseForgeService(nil)
		q := query
		q.PageSize = 0

		_, err := svc.FetchResourceListByName(context.Background(), q)

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(err))
	})
}

func TestCurseForgeService_FetchResourceDescription(t *testing.T) {
	t.Parallel()

	t.Run("converts description HTML", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/mods/394468/description", r.URL.Path)
			_, _ = w.Write([]byte(`{"data":"<p>Fast</p>"}`))
		}))
		defer server.Close()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "md:" + html, nil
			},
		}
		svc := spotlighthttp.NewCurseForgeService(conv, spotlighthttp.WithBaseURL(server.URL))

		desc, err := svc.FetchResourceDescription(context.Background(), spotlight.SourceCurseForge, "394468")

		require.NoError(t, err)
		assert.Equal(t, "md:<p>Fast</p>", desc)
	})

	t.Run("empty description skips conversion", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":""}`))
		}))
		defer server.Close()

		// ConvertFn is nil: conversion must not run.
		svc := spotlighthttp.NewCurseForgeService(&mock.Converter{}, spotlighthttp.WithBaseURL(server.URL))

		desc, err := svc.FetchResourceDescription(context.Background(), spotlight.SourceCurseForge, "1")

		require.NoError(t, err)
		assert.Empty(t, desc)
	})
}

func TestClassID(t *testing.T) {
	t.Parallel()

	for _, rt := range spotlight.ResourceTypes() {
		assert.NotZero(t, spotlighthttp.ClassID(rt), rt)
	}
	assert.Zero(t, spotlighthttp.ClassID("unknown"))
}
