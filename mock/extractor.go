package mock

import "github.com/fwojciec/readweb"

var _ readweb.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readweb.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*readweb.Article, error)
}

func (e *Extractor) Extract(html string) (*readweb.Article, error) {
	return e.ExtractFn(html)
}
