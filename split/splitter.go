// Package split partitions article text into overlapping chunks sized
// for ingestion pipelines. Boundaries prefer paragraph breaks, then
// sentence ends, then whitespace; only pathological unbroken runs are
// cut mid-word.
package split

import (
	"strings"
	"unicode"

	"github.com/fwojciec/readweb"
)

// Ensure Splitter implements readweb.Splitter at compile time.
var _ readweb.Splitter = (*Splitter)(nil)

const (
	// DefaultChunkSize is the target chunk length in runes.
	DefaultChunkSize = 2000

	// DefaultChunkOverlap is the number of runes repeated between
	// adjacent chunks.
	DefaultChunkOverlap = 200
)

// Splitter divides text into chunks of at most Size runes, overlapping
// adjacent chunks by Overlap runes. Chunks preserve text order and never
// invent content; surrounding whitespace is trimmed from each chunk.
type Splitter struct {
	size    int
	overlap int
}

// NewSplitter creates a Splitter. Size must be positive and overlap must
// be smaller than size.
func NewSplitter(size, overlap int) (*Splitter, error) {
	if size <= 0 {
		return nil, readweb.Errorf(readweb.EINVALID, "chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, readweb.Errorf(readweb.EINVALID, "chunk overlap %d must be in [0, %d)", overlap, size)
	}
	return &Splitter{size: size, overlap: overlap}, nil
}

// Split partitions text into chunks. Text that fits in a single chunk is
// returned unchanged.
func (s *Splitter) Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	runes := []rune(trimmed)
	if len(runes) <= s.size {
		return []string{trimmed}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + s.size
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = breakPoint(runes, start, end)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		next := end - s.overlap
		if next <= start {
			// Overlap must not stall progress on short boundaries.
			next = end
		}
		start = next
	}
	return chunks
}

// breakPoint finds the best cut position in runes[start:limit], scanning
// backwards from the limit for a paragraph break, then a sentence end,
// then any whitespace. The window keeps boundaries from drifting too far
// below the target size.
func breakPoint(runes []rune, start, limit int) int {
	window := start + (limit-start)/2

	for i := limit - 1; i > window; i-- {
		if runes[i] == '\n' && i > 0 && runes[i-1] == '\n' {
			return i
		}
	}
	for i := limit - 1; i > window; i-- {
		if isSentenceEnd(runes, i) {
			return i + 1
		}
	}
	for i := limit - 1; i > window; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return limit
}

func isSentenceEnd(runes []rune, i int) bool {
	switch runes[i] {
	case '.', '!', '?':
	default:
		return false
	}
	return i+1 < len(runes) && unicode.IsSpace(runes[i+1])
}
