package bubbletea_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/bubbletea"
	"github.com/fwojciec/spotlight/mock"
	"github.com/fwojciec/spotlight/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, results ...spotlight.Result) (*bubbletea.Model, *search.Spotlight) {
	t.Helper()

	notifier := bubbletea.NewNotifier()
	t.Cleanup(notifier.Close)

	searcher := &mock.Searcher{
		SearchFn: func(_ context.Context, _ string) ([]spotlight.Result, error) {
			return results, nil
		},
	}
	local := search.NewSnapshot([]*spotlight.Player{
		{ID: "p1", Name: "Steve", PlayerType: spotlight.PlayerOffline},
		{ID: "p2", Name: "Stevie", PlayerType: spotlight.PlayerOffline},
	}, nil, nil)
	s := search.NewSpotlight(local, search.NewOrchestrator(searcher, 0, search.WithOnChange(notifier.Notify)))
	t.Cleanup(s.Close)

	return bubbletea.NewModel(context.Background(), s, notifier), s
}

func typeText(m *bubbletea.Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("typing shows grouped matches", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t)

		typeText(m, "stev")

		view := m.View()
		assert.Contains(t, view, "Players (2)")
		assert.Contains(t, view, "Stevie")
		assert.Contains(t, view, "> Steve")
		assert.Contains(t, view, "CurseForge (6)")
	})

	t.Run("enter picks the highlighted result", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t)
		typeText(m, "stev")

		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		selected, ok := m.Selected().(spotlight.PlayerResult)
		require.True(t, ok)
		assert.Equal(t, "Stevie", selected.Player.Name)
	})

	t.Run("cursor stays in range", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t)
		typeText(m, "steve")

		m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		selected, ok := m.Selected().(spotlight.PlayerResult)
		require.True(t, ok)
		assert.Equal(t, "Steve", selected.Player.Name)
	})

	t.Run("enter without results does nothing", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.Nil(t, m.Selected())
	})

	t.Run("esc closes without selection", func(t *testing.T) {
		t.Parallel()

		m, s := newModel(t)
		typeText(m, "steve")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Nil(t, m.Selected())
		assert.Empty(t, s.Query())
	})

	t.Run("network results appear after a change", func(t *testing.T) {
		t.Parallel()

		sodium := spotlight.ResourceResult{Resource: &spotlight.Resource{
			ID:     "AANobbMI",
			Name:   "Sodium",
			Source: spotlight.SourceModrinth,
			Type:   spotlight.ResourceMod,
		}}
		m, s := newModel(t, sodium)
		typeText(m, "sodium")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, s.Wait(ctx))

		_, cmd := m.Update(bubbletea.ChangedMsg{})

		assert.NotNil(t, cmd)
		assert.Contains(t, m.View(), "Sodium")
		assert.Contains(t, m.View(), "Modrinth (6)")
	})

	t.Run("window size adjusts input width", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t)

		_, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), "esc close")
	})
}

func TestNotifier(t *testing.T) {
	t.Parallel()

	n := bubbletea.NewNotifier()
	s := search.NewSpotlight(search.NewSnapshot(nil, nil, nil), search.NewOrchestrator(&mock.Searcher{}, time.Hour))
	m := bubbletea.NewModel(context.Background(), s, n)

	_, wait := m.Update(bubbletea.ChangedMsg{})
	require.NotNil(t, wait)

	n.Notify(search.Status{})
	n.Notify(search.Status{})
	assert.Equal(t, bubbletea.ChangedMsg{}, wait())

	n.Close()
	assert.Nil(t, wait())
}
