//go:build cgo

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dgallion1/docoutline/internal/doc"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleOutline() doc.Outline {
	return doc.Outline{
		Title: "Annual Report",
		Headings: []doc.Heading{
			{Level: doc.LevelH1, Text: "1. Introduction", Page: 1},
			{Level: doc.LevelH2, Text: "1.1 Background", Page: 1},
			{Level: doc.LevelH1, Text: "2. Results", Page: 3},
		},
	}
}

func TestNew(t *testing.T) {
	s := newTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil *sql.DB")
	}
}

func TestNewCreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "dir", "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("creating store in nested dir: %v", err)
	}
	s.Close()
}

func TestSaveAndGetOutline(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := sampleOutline()
	id, err := s.SaveOutline(ctx, Document{
		DocID:       "doc-1",
		Filename:    "report.pdf",
		Format:      ".pdf",
		ContentHash: "abc123",
	}, want)
	if err != nil {
		t.Fatalf("SaveOutline: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero row id")
	}

	got, err := s.GetOutline(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetOutline: %v", err)
	}
	if got == nil {
		t.Fatal("expected outline, got nil")
	}
	if got.Title != want.Title {
		t.Errorf("title = %q, want %q", got.Title, want.Title)
	}
	if len(got.Headings) != len(want.Headings) {
		t.Fatalf("got %d headings, want %d", len(got.Headings), len(want.Headings))
	}
	for i, h := range got.Headings {
		if h != want.Headings[i] {
			t.Errorf("heading %d = %+v, want %+v", i, h, want.Headings[i])
		}
	}
}

func TestSaveOutlineReplacesHeadings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := Document{DocID: "doc-1", Filename: "report.pdf", Format: ".pdf", ContentHash: "v1"}
	if _, err := s.SaveOutline(ctx, d, sampleOutline()); err != nil {
		t.Fatalf("first save: %v", err)
	}

	d.ContentHash = "v2"
	updated := doc.Outline{
		Title:    "Annual Report v2",
		Headings: []doc.Heading{{Level: doc.LevelH1, Text: "Overview", Page: 0}},
	}
	if _, err := s.SaveOutline(ctx, d, updated); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.GetOutline(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetOutline: %v", err)
	}
	if got.Title != "Annual Report v2" {
		t.Errorf("title = %q, want updated title", got.Title)
	}
	if len(got.Headings) != 1 {
		t.Fatalf("got %d headings after replace, want 1", len(got.Headings))
	}

	row, err := s.GetDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if row.ContentHash != "v2" {
		t.Errorf("content hash = %q, want v2", row.ContentHash)
	}
	if row.HeadingCount != 1 {
		t.Errorf("heading count = %d, want 1", row.HeadingCount)
	}
}

func TestGetOutlineUnknownDoc(t *testing.T) {
	s := newTestStore(t)
	got, err := s.GetOutline(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetOutline: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown doc, got %+v", got)
	}
}

func TestFindByHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveOutline(ctx, Document{
		DocID: "doc-1", Filename: "a.pdf", Format: ".pdf", ContentHash: "h1",
	}, sampleOutline()); err != nil {
		t.Fatalf("SaveOutline: %v", err)
	}

	d, err := s.FindByHash(ctx, "h1")
	if err != nil {
		t.Fatalf("FindByHash: %v", err)
	}
	if d == nil || d.DocID != "doc-1" {
		t.Fatalf("FindByHash = %+v, want doc-1", d)
	}

	d, err = s.FindByHash(ctx, "nope")
	if err != nil {
		t.Fatalf("FindByHash miss: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil for unknown hash, got %+v", d)
	}
}

func TestListDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"doc-1", "doc-2"} {
		if _, err := s.SaveOutline(ctx, Document{
			DocID: id, Filename: id + ".md", Format: ".md", ContentHash: id,
		}, sampleOutline()); err != nil {
			t.Fatalf("SaveOutline %s: %v", id, err)
		}
	}

	docs, err := s.ListDocuments(ctx, 0)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
}

func TestDeleteDocumentCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveOutline(ctx, Document{
		DocID: "doc-1", Filename: "a.md", Format: ".md", ContentHash: "h1",
	}, sampleOutline()); err != nil {
		t.Fatalf("SaveOutline: %v", err)
	}

	deleted, err := s.DeleteDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report a removed row")
	}

	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM headings").Scan(&n); err != nil {
		t.Fatalf("counting headings: %v", err)
	}
	if n != 0 {
		t.Errorf("expected cascade to remove headings, found %d", n)
	}

	deleted, err = s.DeleteDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report no row")
	}
}
