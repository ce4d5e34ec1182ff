// Package norm provides Unicode normalization for extracted text.
package norm

import (
	"github.com/fwojciec/readweb"
	"golang.org/x/text/unicode/norm"
)

// Ensure Normalizer implements readweb.Normalizer at compile time.
var _ readweb.Normalizer = (*Normalizer)(nil)

// Normalizer applies a Unicode normalization form to text. NFKC folds
// compatibility characters (full-width forms, ligatures, non-breaking
// spaces) into their canonical equivalents so downstream chunking and
// storage see one representation per grapheme.
type Normalizer struct {
	form norm.Form
}

// NewNormalizer creates a Normalizer using NFKC.
func NewNormalizer() *Normalizer {
	return &Normalizer{form: norm.NFKC}
}

// NewNormalizerForm creates a Normalizer using the given form.
func NewNormalizerForm(form norm.Form) *Normalizer {
	return &Normalizer{form: form}
}

// Normalize returns the normalized form of text.
func (n *Normalizer) Normalize(text string) string {
	if n.form.IsNormalString(text) {
		return text
	}
	return n.form.String(text)
}
