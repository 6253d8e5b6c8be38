// Package store persists extracted outlines in SQLite so documents can
// be listed and their outlines re-served without reprocessing.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dgallion1/docoutline/internal/doc"
)

const schemaSQL = `
-- Document registry with hash-based change detection
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    doc_id TEXT NOT NULL UNIQUE,
    filename TEXT NOT NULL,
    format TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    heading_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);

-- Outline entries in document order
CREATE TABLE IF NOT EXISTS headings (
    id INTEGER PRIMARY KEY,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    level TEXT NOT NULL,
    text TEXT NOT NULL,
    page INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_headings_doc ON headings(document_id, position);
`

// Document represents a row in the documents table.
type Document struct {
	ID           int64  `json:"id"`
	DocID        string `json:"doc_id"`
	Filename     string `json:"filename"`
	Format       string `json:"format"`
	ContentHash  string `json:"content_hash"`
	Title        string `json:"title"`
	HeadingCount int    `json:"heading_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at path and ensures the
// schema exists.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle, used by tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveOutline upserts the document row and replaces its outline entries
// in one transaction.
func (s *Store) SaveOutline(ctx context.Context, d Document, o doc.Outline) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (doc_id, filename, format, content_hash, title, heading_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET
			filename = excluded.filename,
			format = excluded.format,
			content_hash = excluded.content_hash,
			title = excluded.title,
			heading_count = excluded.heading_count,
			updated_at = CURRENT_TIMESTAMP`,
		d.DocID, d.Filename, d.Format, d.ContentHash, o.Title, len(o.Headings))
	if err != nil {
		return 0, fmt.Errorf("upserting document: %w", err)
	}

	var id int64
	row := tx.QueryRowContext(ctx, "SELECT id FROM documents WHERE doc_id = ?", d.DocID)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("reading document id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM headings WHERE document_id = ?", id); err != nil {
		return 0, fmt.Errorf("clearing headings: %w", err)
	}
	for i, h := range o.Headings {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO headings (document_id, position, level, text, page) VALUES (?, ?, ?, ?, ?)",
			id, i, string(h.Level), h.Text, h.Page); err != nil {
			return 0, fmt.Errorf("inserting heading %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// GetDocument returns the registry row for a doc ID.
func (s *Store) GetDocument(ctx context.Context, docID string) (*Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, doc_id, filename, format, content_hash, title, heading_count, created_at, updated_at
		FROM documents WHERE doc_id = ?`, docID)
	var d Document
	err := row.Scan(&d.ID, &d.DocID, &d.Filename, &d.Format, &d.ContentHash,
		&d.Title, &d.HeadingCount, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return &d, nil
}

// FindByHash returns the first document matching a content hash, or nil.
func (s *Store) FindByHash(ctx context.Context, hash string) (*Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, doc_id, filename, format, content_hash, title, heading_count, created_at, updated_at
		FROM documents WHERE content_hash = ? LIMIT 1`, hash)
	var d Document
	err := row.Scan(&d.ID, &d.DocID, &d.Filename, &d.Format, &d.ContentHash,
		&d.Title, &d.HeadingCount, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading document by hash: %w", err)
	}
	return &d, nil
}

// GetOutline reassembles a stored outline in document order.
func (s *Store) GetOutline(ctx context.Context, docID string) (*doc.Outline, error) {
	d, err := s.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT level, text, page FROM headings WHERE document_id = ? ORDER BY position", d.ID)
	if err != nil {
		return nil, fmt.Errorf("reading headings: %w", err)
	}
	defer rows.Close()

	o := doc.Outline{Title: d.Title, Headings: []doc.Heading{}}
	for rows.Next() {
		var level string
		var h doc.Heading
		if err := rows.Scan(&level, &h.Text, &h.Page); err != nil {
			return nil, fmt.Errorf("scanning heading: %w", err)
		}
		h.Level = doc.Level(level)
		o.Headings = append(o.Headings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating headings: %w", err)
	}
	return &o, nil
}

// ListDocuments returns all registry rows, most recent first.
func (s *Store) ListDocuments(ctx context.Context, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, doc_id, filename, format, content_hash, title, heading_count, created_at, updated_at
		FROM documents ORDER BY updated_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.DocID, &d.Filename, &d.Format, &d.ContentHash,
			&d.Title, &d.HeadingCount, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document and, via cascade, its headings.
// Returns true when a row was deleted.
func (s *Store) DeleteDocument(ctx context.Context, docID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE doc_id = ?", docID)
	if err != nil {
		return false, fmt.Errorf("deleting document: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
