package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readweb"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ readweb.DocumentService = (*DocumentService)(nil)

// DocumentService implements readweb.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashText computes xxHash of text and returns a hex string.
func hashText(text string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(text))
	return hex.EncodeToString(b[:])
}

const documentColumns = "id, url, position, text, title, excerpt, byline, direction, language, site_name, article_length, content_hash, fetched_at"

// CreateDocument creates a new document. The ID and content hash are
// generated here; FetchedAt is preserved when the caller set it.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *readweb.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ContentHash = hashText(doc.Text)
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.URL, doc.Position, doc.Text, doc.Title, doc.Excerpt, doc.Byline,
		doc.Direction, doc.Language, doc.SiteName, doc.ArticleLength, doc.ContentHash,
		doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*readweb.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, readweb.Errorf(readweb.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter readweb.DocumentFilter) ([]*readweb.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	switch filter.SortBy {
	case readweb.SortByPosition:
		query.WriteString(" ORDER BY url ASC, position ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC, position ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*readweb.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return readweb.Errorf(readweb.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByURL removes all documents for a source URL.
func (s *DocumentService) DeleteDocumentsByURL(ctx context.Context, url string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE url = ?", url)
	return err
}

// scanDocument reads one documents row through the given scan function.
func scanDocument(scan func(dest ...any) error) (*readweb.Document, error) {
	var doc readweb.Document
	var fetchedAt string

	if err := scan(&doc.ID, &doc.URL, &doc.Position, &doc.Text, &doc.Title, &doc.Excerpt,
		&doc.Byline, &doc.Direction, &doc.Language, &doc.SiteName, &doc.ArticleLength,
		&doc.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
