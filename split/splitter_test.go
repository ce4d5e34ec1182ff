package split_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Splitter implements readweb.Splitter at compile time.
var _ readweb.Splitter = (*split.Splitter)(nil)

func newSplitter(t *testing.T, size, overlap int) *split.Splitter {
	t.Helper()
	s, err := split.NewSplitter(size, overlap)
	require.NoError(t, err)
	return s
}

func TestNewSplitter_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -1, 0},
		{"negative overlap", 100, -1},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := split.NewSplitter(tt.size, tt.overlap)
			require.Error(t, err)
			assert.Equal(t, readweb.EINVALID, readweb.ErrorCode(err))
		})
	}
}

func TestSplitter_Split(t *testing.T) {
	t.Parallel()

	t.Run("short text is a single chunk", func(t *testing.T) {
		t.Parallel()

		s := newSplitter(t, 100, 10)
		chunks := s.Split("A short paragraph.")

		assert.Equal(t, []string{"A short paragraph."}, chunks)
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		t.Parallel()

		s := newSplitter(t, 100, 10)
		assert.Empty(t, s.Split("   \n\t  "))
	})

	t.Run("prefers paragraph boundaries", func(t *testing.T) {
		t.Parallel()

		first := strings.Repeat("alpha ", 12)  // 72 runes
		second := strings.Repeat("omega ", 12) // 72 runes
		text := strings.TrimSpace(first) + "\n\n" + strings.TrimSpace(second)

		s := newSplitter(t, 100, 0)
		chunks := s.Split(text)

		require.Len(t, chunks, 2)
		assert.Equal(t, strings.TrimSpace(first), chunks[0])
		assert.Equal(t, strings.TrimSpace(second), chunks[1])
	})

	t.Run("falls back to sentence boundaries", func(t *testing.T) {
		t.Parallel()

		text := "First sentence covers a fair amount of ground here. Second sentence keeps going with more words. Third sentence closes it out with a few more."

		s := newSplitter(t, 80, 0)
		chunks := s.Split(text)

		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks[:len(chunks)-1] {
			assert.Regexp(t, `[.!?]$`, chunk)
		}
	})

	t.Run("respects chunk size limit", func(t *testing.T) {
		t.Parallel()

		words := strings.Repeat("lorem ipsum dolor sit amet ", 100)

		s := newSplitter(t, 120, 20)
		chunks := s.Split(words)

		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 120)
		}
	})

	t.Run("never drops content", func(t *testing.T) {
		t.Parallel()

		text := strings.TrimSpace(strings.Repeat("content word ", 60))

		s := newSplitter(t, 90, 0)
		chunks := s.Split(text)

		joined := strings.Join(chunks, " ")
		for _, word := range strings.Fields(text) {
			assert.Contains(t, joined, word)
		}
		// With no overlap the chunks reassemble the original exactly.
		assert.Equal(t, strings.Fields(text), strings.Fields(joined))
	})

	t.Run("overlap repeats trailing text", func(t *testing.T) {
		t.Parallel()

		text := strings.TrimSpace(strings.Repeat("wordy chunk of text ", 30))

		s := newSplitter(t, 100, 30)
		chunks := s.Split(text)

		require.Greater(t, len(chunks), 1)
		// The head of each later chunk repeats material from its
		// predecessor.
		for i := 1; i < len(chunks); i++ {
			head := strings.Fields(chunks[i])[0]
			assert.Contains(t, chunks[i-1], head)
		}
	})

	t.Run("handles unbroken runs", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 250)

		s := newSplitter(t, 100, 0)
		chunks := s.Split(text)

		require.NotEmpty(t, chunks)
		var total int
		for _, chunk := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 100)
			total += utf8.RuneCountInString(chunk)
		}
		assert.Equal(t, 250, total)
	})

	t.Run("multibyte runes count as single characters", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("日本語の文章 ", 40)

		s := newSplitter(t, 50, 0)
		chunks := s.Split(text)

		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 50)
		}
	})
}
