package readweb

import (
	"context"
	"time"
)

// Document represents one chunk of extracted article text together with
// the metadata of the article it came from. A page whose text splits into
// N chunks produces N documents sharing the same article metadata.
type Document struct {
	ID  string `json:"id"`
	URL string `json:"url"`

	// Position is the zero-based chunk index within the source article.
	Position int `json:"position"`

	// Text is the (normalized) chunk text.
	Text string `json:"text"`

	// Article metadata, identical across all chunks of one page.
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt,omitempty"`
	Byline        string `json:"byline,omitempty"`
	Direction     string `json:"dir,omitempty"`
	Language      string `json:"lang,omitempty"`
	SiteName      string `json:"siteName,omitempty"`
	ArticleLength int    `json:"articleLength"`

	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Text == "" {
		return Errorf(EINVALID, "document text required")
	}
	if d.Position < 0 {
		return Errorf(EINVALID, "document position must not be negative")
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByURL removes all documents for a source URL.
	DeleteDocumentsByURL(ctx context.Context, url string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByPosition  SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
