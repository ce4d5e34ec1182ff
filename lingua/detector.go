// Package lingua detects the language of extracted text. The loader uses
// it to fill Document.Language when the page declares no lang attribute.
package lingua

import (
	"strings"

	"github.com/fwojciec/readweb"
	"github.com/pemistahl/lingua-go"
)

// Ensure Detector implements readweb.LanguageDetector at compile time.
var _ readweb.LanguageDetector = (*Detector)(nil)

// minimumRelativeDistance filters out ambiguous classifications; below
// this confidence gap Detect reports no result rather than guessing.
const minimumRelativeDistance = 0.25

// Detector identifies the language of a text using lingua's statistical
// models. Detector is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector restricted to the given languages.
// With fewer than two languages it considers all supported languages,
// which loads every model and costs startup time and memory.
func NewDetector(languages ...lingua.Language) *Detector {
	var builder lingua.LanguageDetectorBuilder
	if len(languages) >= 2 {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	}
	return &Detector{
		detector: builder.
			WithMinimumRelativeDistance(minimumRelativeDistance).
			Build(),
	}
}

// Detect returns an ISO 639-1 language code for the text. Returns false
// if no language could be determined reliably.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
