package mock

import "github.com/fwojciec/readweb"

var _ readweb.Converter = (*Converter)(nil)

// Converter is a mock implementation of readweb.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
