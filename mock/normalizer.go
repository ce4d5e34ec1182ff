package mock

import "github.com/fwojciec/readweb"

var _ readweb.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of readweb.Normalizer.
type Normalizer struct {
	NormalizeFn func(text string) string
}

func (n *Normalizer) Normalize(text string) string {
	return n.NormalizeFn(text)
}

var _ readweb.Splitter = (*Splitter)(nil)

// Splitter is a mock implementation of readweb.Splitter.
type Splitter struct {
	SplitFn func(text string) []string
}

func (s *Splitter) Split(text string) []string {
	return s.SplitFn(text)
}

var _ readweb.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of readweb.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) (string, bool)
}

func (d *LanguageDetector) Detect(text string) (string, bool) {
	return d.DetectFn(text)
}
