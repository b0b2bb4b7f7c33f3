package toml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `language = "zh-Hans"
http_timeout = "5s"

[search]
debounce = "300ms"
max_per_source = 4
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("decodes search table", func(t *testing.T) {
		t.Parallel()

		f, err := toml.ParseConfig([]byte(sampleConfig))

		require.NoError(t, err)
		require.NotNil(t, f.Search.MaxPerSource)
		assert.Equal(t, 4, *f.Search.MaxPerSource)
		assert.Nil(t, f.RateLimit)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := toml.ParseConfig([]byte("[search]\nmax_results = 3\n"))

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies file over defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
		cfg := spotlight.DefaultConfig()

		require.NoError(t, toml.LoadConfig(path, &cfg))

		assert.Equal(t, "zh-Hans", cfg.Language)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
		assert.Equal(t, 4, cfg.Search.MaxPerSource)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		cfg := spotlight.DefaultConfig()

		err := toml.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg)

		assert.Equal(t, spotlight.ENOTFOUND, spotlight.ErrorCode(err))
	})
}
