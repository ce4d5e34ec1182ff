package mock

import (
	"context"

	"github.com/fwojciec/readweb"
)

var _ readweb.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of readweb.DocumentService.
type DocumentService struct {
	CreateDocumentFn       func(ctx context.Context, doc *readweb.Document) error
	FindDocumentByIDFn     func(ctx context.Context, id string) (*readweb.Document, error)
	FindDocumentsFn        func(ctx context.Context, filter readweb.DocumentFilter) ([]*readweb.Document, error)
	DeleteDocumentFn       func(ctx context.Context, id string) error
	DeleteDocumentsByURLFn func(ctx context.Context, url string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *readweb.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*readweb.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter readweb.DocumentFilter) ([]*readweb.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByURL(ctx context.Context, url string) error {
	return s.DeleteDocumentsByURLFn(ctx, url)
}
