package strutil_test

import (
	"testing"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/strutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScorer(t *testing.T) {
	t.Parallel()

	t.Run("accepts every listed metric", func(t *testing.T) {
		t.Parallel()

		for _, name := range strutil.Metrics() {
			s, err := strutil.NewScorer(name)
			require.NoError(t, err, name)
			assert.NotNil(t, s)
		}
	})

	t.Run("ignores case and surrounding space", func(t *testing.T) {
		t.Parallel()

		_, err := strutil.NewScorer(" Jaro-Winkler ")

		assert.NoError(t, err)
	})

	t.Run("rejects unknown metric", func(t *testing.T) {
		t.Parallel()

		_, err := strutil.NewScorer("soundex")

		assert.Equal(t, spotlight.EINVALID, spotlight.ErrorCode(err))
	})
}

func TestScorer_Score(t *testing.T) {
	t.Parallel()

	t.Run("identical strings score one", func(t *testing.T) {
		t.Parallel()

		for _, name := range strutil.Metrics() {
			s, err := strutil.NewScorer(name)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, s.Score("sodium", "sodium"), 1e-9, name)
			assert.InDelta(t, 1.0, s.Score("", ""), 1e-9, name)
		}
	})

	t.Run("empty side scores zero", func(t *testing.T) {
		t.Parallel()

		s, err := strutil.NewScorer(strutil.MetricLevenshtein)
		require.NoError(t, err)

		assert.Zero(t, s.Score("sodium", ""))
		assert.Zero(t, s.Score("  ", "sodium"))
	})

	t.Run("whitespace is ignored", func(t *testing.T) {
		t.Parallel()

		s, err := strutil.NewScorer(strutil.MetricLevenshtein)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, s.Score("twilight forest", "twilightforest"), 1e-9)
	})

	t.Run("levenshtein similarity", func(t *testing.T) {
		t.Parallel()

		s, err := strutil.NewScorer(strutil.MetricLevenshtein)
		require.NoError(t, err)

		assert.InDelta(t, 0.6, s.Score("night", "nacht"), 1e-9)
		assert.InDelta(t, 1-1.0/7, s.Score("lithium", "lithiun"), 1e-9)
	})

	t.Run("closer strings score higher", func(t *testing.T) {
		t.Parallel()

		for _, name := range strutil.Metrics() {
			s, err := strutil.NewScorer(name)
			require.NoError(t, err)
			assert.Greater(t, s.Score("create", "create deco"), s.Score("create", "sodium"), name)
		}
	})
}
