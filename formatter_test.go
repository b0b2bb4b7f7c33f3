package spotlight_test

import (
	"testing"

	"github.com/fwojciec/spotlight"
	"github.com/stretchr/testify/assert"
)

func TestFormatGroups(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no groups", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, spotlight.FormatGroups(nil, false))
	})

	t.Run("marks the first result with Enter", func(t *testing.T) {
		t.Parallel()

		groups := spotlight.GroupResults([]spotlight.Result{
			spotlight.PageResult{Route: "/settings/general"},
			spotlight.PlayerResult{Player: &spotlight.Player{Name: "Steve", PlayerType: spotlight.PlayerOffline}},
		})

		result := spotlight.FormatGroups(groups, false)

		expected := "## Pages (1)\n  /settings/general  [Enter]\n    Recently viewed\n\n" +
			"## Players (1)\n  Steve\n    Offline"
		assert.Equal(t, expected, result)
	})

	t.Run("shows translated title and tags when enabled", func(t *testing.T) {
		t.Parallel()

		groups := spotlight.GroupResults([]spotlight.Result{
			spotlight.ResourceResult{Resource: &spotlight.Resource{
				Source:         spotlight.SourceModrinth,
				Name:           "Sodium",
				TranslatedName: "钠",
				Description:    "Rendering engine",
				Tags:           []string{"optimization"},
			}},
		})

		result := spotlight.FormatGroups(groups, true)

		expected := "## Modrinth (1)\n  钠 | Sodium [optimization]  [Enter]\n    Rendering engine"
		assert.Equal(t, expected, result)
	})
}
