package readability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "options.yaml")
		require.NoError(t, os.WriteFile(path, []byte("char_threshold: 120\nkeep_classes: true\n"), 0o644))

		opts, err := readability.LoadOptions(path)

		require.NoError(t, err)
		assert.Equal(t, 120, opts.CharThreshold)
		assert.True(t, opts.KeepClasses)
		assert.Equal(t, readability.DefaultSiblingScoreFraction, opts.SiblingScoreFraction)
		assert.True(t, opts.KeepImages)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := readability.LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Equal(t, readweb.EINVALID, readweb.ErrorCode(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "options.yaml")
		require.NoError(t, os.WriteFile(path, []byte("char_threshold: [not an int\n"), 0o644))

		_, err := readability.LoadOptions(path)

		assert.Equal(t, readweb.EINVALID, readweb.ErrorCode(err))
	})
}
