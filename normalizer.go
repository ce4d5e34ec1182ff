package readweb

// Normalizer transforms extracted text before splitting and storage,
// e.g. Unicode normalization. Implementations must be pure functions.
type Normalizer interface {
	// Normalize returns the normalized form of text.
	Normalize(text string) string
}

// Splitter partitions article text into an ordered sequence of chunks for
// downstream document records. Implementations must preserve text order
// and must not invent or drop content outside of boundary whitespace.
type Splitter interface {
	// Split partitions text into chunks. An implementation may return
	// the input unchanged as a single chunk.
	Split(text string) []string
}

// LanguageDetector identifies the language of a text.
type LanguageDetector interface {
	// Detect returns an ISO 639-1 language code for the text.
	// Returns false if no language could be determined reliably.
	Detect(text string) (code string, ok bool)
}
