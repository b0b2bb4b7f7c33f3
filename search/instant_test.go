package search_test

import (
	"testing"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() *search.Snapshot {
	players := []*spotlight.Player{
		{ID: "p1", Name: "Steve", PlayerType: spotlight.PlayerOffline},
		{ID: "p2", Name: "Alex", PlayerType: spotlight.PlayerThirdParty, AuthServer: "LittleSkin", AuthAccount: "alex@example.com"},
	}
	instances := []*spotlight.Instance{
		{ID: "i1", Name: "Vanilla Survival", Version: "1.20.1", ModLoader: spotlight.ModLoader{LoaderType: spotlight.LoaderUnknown}},
		{ID: "i2", Name: "Create Pack", Version: "1.19.2", ModLoader: spotlight.ModLoader{LoaderType: spotlight.LoaderForge, Version: "1.19.2-forge-43.2.0"}},
	}
	history := []string{"/settings/java", "/instances/list", "/settings/general"}
	return search.NewSnapshot(players, instances, history)
}

func TestMatchInstant(t *testing.T) {
	t.Parallel()

	t.Run("empty query matches nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, search.MatchInstant(testState(), ""))
		assert.Empty(t, search.MatchInstant(testState(), "   "))
	})

	t.Run("nil state matches nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, search.MatchInstant(nil, "steve"))
	})

	t.Run("route query returns most recent matching history entry", func(t *testing.T) {
		t.Parallel()

		results := search.MatchInstant(testState(), "/settings")

		require.Len(t, results, 1)
		assert.Equal(t, spotlight.PageResult{Route: "/settings/general"}, results[0])
	})

	t.Run("bare slash does not match history", func(t *testing.T) {
		t.Parallel()

		results := search.MatchInstant(testState(), "/")

		for _, r := range results {
			assert.NotEqual(t, spotlight.KindPage, r.Kind())
		}
	})

	t.Run("history ignored without leading slash", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, search.MatchInstant(testState(), "settings"))
	})

	t.Run("matches players by name case insensitively", func(t *testing.T) {
		t.Parallel()

		results := search.MatchInstant(testState(), "STEVE")

		require.Len(t, results, 1)
		assert.Equal(t, "p1", results[0].(spotlight.PlayerResult).Player.ID)
	})

	t.Run("matches players by auth account", func(t *testing.T) {
		t.Parallel()

		results := search.MatchInstant(testState(), "example.com")

		require.Len(t, results, 1)
		assert.Equal(t, "p2", results[0].(spotlight.PlayerResult).Player.ID)
	})

	t.Run("matches instances by version and loader", func(t *testing.T) {
		t.Parallel()

		byVersion := search.MatchInstant(testState(), "1.20")
		require.Len(t, byVersion, 1)
		assert.Equal(t, "i1", byVersion[0].(spotlight.InstanceResult).Instance.ID)

		byLoader := search.MatchInstant(testState(), "forge")
		require.Len(t, byLoader, 1)
		assert.Equal(t, "i2", byLoader[0].(spotlight.InstanceResult).Instance.ID)
	})

	t.Run("unknown loader is not searchable", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, search.MatchInstant(testState(), "unknown"))
	})

	t.Run("any keyword may match", func(t *testing.T) {
		t.Parallel()

		results := search.MatchInstant(testState(), "alex create")

		require.Len(t, results, 2)
		assert.Equal(t, spotlight.KindPlayer, results[0].Kind())
		assert.Equal(t, spotlight.KindInstance, results[1].Kind())
	})

	t.Run("orders history then players then instances", func(t *testing.T) {
		t.Parallel()

		state := search.NewSnapshot(
			[]*spotlight.Player{{ID: "p", Name: "/in", PlayerType: spotlight.PlayerOffline}},
			[]*spotlight.Instance{{ID: "i", Name: "/inst", Version: "1.20.1"}},
			[]string{"/instances/list"},
		)

		results := search.MatchInstant(state, "/in")

		require.Len(t, results, 3)
		assert.Equal(t, spotlight.KindPage, results[0].Kind())
		assert.Equal(t, spotlight.KindPlayer, results[1].Kind())
		assert.Equal(t, spotlight.KindInstance, results[2].Kind())
	})
}

func TestMatchInstant_FullWidthQuery(t *testing.T) {
	t.Parallel()

	results := search.MatchInstant(testState(), "ｓｔｅｖｅ")

	require.Len(t, results, 1)
	assert.Equal(t, "Steve", results[0].Title())
}
