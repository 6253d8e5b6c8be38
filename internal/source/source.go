// Package source turns raw document bytes into positioned, font-annotated
// text spans for the outline engine. PDF input carries real font metrics;
// structured formats (markdown, HTML, DOCX, XLSX) map their native heading
// markup onto a synthetic size ladder so the same engine applies.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/doc"
)

// Provider converts raw document bytes into spans in reading order.
type Provider interface {
	Spans(r io.Reader, filename string) ([]doc.TextSpan, error)
}

// Synthetic sizes for formats that declare headings structurally rather
// than typographically. Chosen so the font analyzer reconstructs the
// intended tier ranks.
const (
	sizeBody = 12.0
	sizeH1   = 24.0
	sizeH2   = 18.0
	sizeH3   = 16.0
	sizeH4   = 14.0
)

// headingSize maps a structural heading level to a synthetic font size.
func headingSize(level int) float64 {
	switch level {
	case 1:
		return sizeH1
	case 2:
		return sizeH2
	case 3:
		return sizeH3
	default:
		return sizeH4
	}
}

// spanStep is the position increment between synthetic lines, spaced so
// the normalizer never mistakes consecutive lines for one line.
const spanStep = 10.0

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".xlsx":     true,
}

// ForFile returns the appropriate provider for a filename.
func ForFile(filename string) (Provider, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextProvider{}, nil
	case ".md", ".markdown":
		return &MarkdownProvider{}, nil
	case ".html", ".htm":
		return &HTMLProvider{}, nil
	case ".pdf":
		return &PDFProvider{}, nil
	case ".docx":
		return &DOCXProvider{}, nil
	case ".xlsx":
		return &XLSXProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
