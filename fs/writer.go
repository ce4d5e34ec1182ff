// Package fs provides file-based storage for extracted documents.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/readweb"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// chunkPath derives the file path for one chunk. The first chunk keeps
// the page path; later chunks get a numeric suffix before the extension.
func chunkPath(relPath string, position int) string {
	if position == 0 {
		return relPath
	}
	ext := filepath.Ext(relPath)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(relPath, ext), position, ext)
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *readweb.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	fmt.Fprintf(&b, "\nposition: %d", doc.Position)
	if doc.Language != "" {
		b.WriteString("\nlanguage: ")
		b.WriteString(doc.Language)
	}
	b.WriteString("\nfetched: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Text)
	return b.String()
}

// Ensure Writer implements readweb.DocumentWriter at compile time.
var _ readweb.DocumentWriter = (*Writer)(nil)

// Writer writes documents as files under a base directory, one file per
// chunk.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes a document to disk.
func (w *Writer) CreateDocument(ctx context.Context, doc *readweb.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.URL)
	if err != nil {
		return err
	}
	relPath = chunkPath(relPath, doc.Position)

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}
