package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/sqlite"
)

func BenchmarkDocumentService_CreateDocument(b *testing.B) {
	db := sqlite.NewDB(":memory:")
	if err := db.Open(); err != nil {
		b.Fatal(err)
	}
	defer db.Close()

	svc := sqlite.NewDocumentService(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc := testDocument(fmt.Sprintf("https://example.com/page-%d", i), 0)
		if err := svc.CreateDocument(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDocumentService_FindDocuments(b *testing.B) {
	db := sqlite.NewDB(":memory:")
	if err := db.Open(); err != nil {
		b.Fatal(err)
	}
	defer db.Close()

	svc := sqlite.NewDocumentService(db)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		doc := testDocument("https://example.com/page", i)
		if err := svc.CreateDocument(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}

	url := "https://example.com/page"
	filter := readweb.DocumentFilter{URL: &url, SortBy: readweb.SortByPosition}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.FindDocuments(ctx, filter); err != nil {
			b.Fatal(err)
		}
	}
}
