package spotlight_test

import (
	"testing"
	"time"

	"github.com/fwojciec/spotlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := spotlight.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, spotlight.DefaultDebounce, cfg.Search.Debounce)
	assert.InDelta(t, 0.45, cfg.Search.MinRelevance, 1e-9)
	assert.Equal(t, 3, cfg.Search.MaxPerSource)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := spotlight.DefaultConfig()
	cfg.Search.MaxPerSource = 0

	assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(cfg.Validate()))
}

func TestConfig_ShowTranslation(t *testing.T) {
	t.Parallel()

	cfg := spotlight.DefaultConfig()
	assert.False(t, cfg.ShowTranslation())

	cfg.Language = "zh-Hans"
	assert.True(t, cfg.ShowTranslation())

	cfg.ResourceTranslation = false
	assert.False(t, cfg.ShowTranslation())
}

func TestResourceQuery_Validate(t *testing.T) {
	t.Parallel()

	q := spotlight.ResourceQuery{Type: spotlight.ResourceMod, Source: spotlight.SourceModrinth, PageSize: 3, Page: 2}

	require.NoError(t, q.Validate())
	assert.Equal(t, 6, q.Offset())

	q.PageSize = 0
	assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(q.Validate()))
}

func TestSource_Hosts(t *testing.T) {
	t.Parallel()

	assert.False(t, spotlight.SourceModrinth.Hosts(spotlight.ResourceWorld))
	assert.True(t, spotlight.SourceCurseForge.Hosts(spotlight.ResourceWorld))
}

func TestConfigFile_Apply(t *testing.T) {
	t.Parallel()

	t.Run("overlays set fields only", func(t *testing.T) {
		t.Parallel()

		lang := "zh-Hans"
		debounce := "250ms"
		perSource := 5
		f := spotlight.ConfigFile{
			Language: &lang,
			Search:   spotlight.SearchConfigFile{Debounce: &debounce, MaxPerSource: &perSource},
		}
		cfg := spotlight.DefaultConfig()

		require.NoError(t, f.Apply(&cfg))

		assert.Equal(t, "zh-Hans", cfg.Language)
		assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
		assert.Equal(t, 5, cfg.Search.MaxPerSource)
		assert.Equal(t, spotlight.DefaultResourcesPerRequest, cfg.Search.ResourcesPerRequest)
		assert.True(t, cfg.ResourceTranslation)
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		t.Parallel()

		timeout := "ten seconds"
		f := spotlight.ConfigFile{HTTPTimeout: &timeout}
		cfg := spotlight.DefaultConfig()

		err := f.Apply(&cfg)

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(err))
		assert.Contains(t, spotlight.ErrorMessage(err), "http_timeout")
	})

	t.Run("validates the result", func(t *testing.T) {
		t.Parallel()

		relevance := 1.5
		f := spotlight.ConfigFile{Search: spotlight.SearchConfigFile{MinRelevance: &relevance}}
		cfg := spotlight.DefaultConfig()

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(f.Apply(&cfg)))
	})
}
