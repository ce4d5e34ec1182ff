package mock

import (
	"context"

	"github.com/fwojciec/readweb"
)

var _ readweb.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of readweb.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *readweb.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *readweb.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
