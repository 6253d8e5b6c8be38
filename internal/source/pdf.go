package source

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dgallion1/docoutline/internal/doc"
)

// PDFProvider extracts spans with real font metrics from PDF files.
type PDFProvider struct{}

// lineYTolerance is the maximum Y difference for two text runs to sit on
// the same visual line.
const lineYTolerance = 2.0

func (p *PDFProvider) Spans(r io.Reader, filename string) ([]doc.TextSpan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	var spans []doc.TextSpan
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := pageContent(page)
		if err != nil {
			// Skip pages that fail to extract.
			continue
		}
		spans = append(spans, pageSpans(content.Text, i-1)...)
	}
	return spans, nil
}

// pageSpans groups a page's raw text runs into per-line spans. Runs are
// sorted top-to-bottom then left-to-right; runs on one line sharing a
// size become one span. Position is negated Y so ascending position
// matches reading order.
func pageSpans(runs []pdf.Text, pageIdx int) []doc.TextSpan {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if dy := sorted[i].Y - sorted[j].Y; dy > lineYTolerance || dy < -lineYTolerance {
			return sorted[i].Y > sorted[j].Y // higher Y renders first
		}
		return sorted[i].X < sorted[j].X
	})

	var spans []doc.TextSpan
	var buf strings.Builder
	var cur pdf.Text
	open := false

	flush := func() {
		if !open {
			return
		}
		spans = append(spans, doc.TextSpan{
			Text:     buf.String(),
			Size:     cur.FontSize,
			Bold:     fontNameBold(cur.Font),
			Page:     pageIdx,
			Position: -cur.Y,
		})
		buf.Reset()
		open = false
	}

	for _, run := range sorted {
		if run.S == "" {
			continue
		}
		sameLine := open && abs(run.Y-cur.Y) <= lineYTolerance
		sameStyle := open && abs(run.FontSize-cur.FontSize) < 0.1 && fontNameBold(run.Font) == fontNameBold(cur.Font)
		if !sameLine || !sameStyle {
			flush()
			cur = run
			buf.WriteString(run.S)
			open = true
			continue
		}
		// Continuation on the same line: add a space across a visible gap.
		if run.X-(cur.X+cur.W) > cur.FontSize*0.2 {
			buf.WriteString(" ")
		}
		buf.WriteString(run.S)
		cur.X = run.X
		cur.W = run.W
	}
	flush()

	return spans
}

// pageContent wraps Content(), which panics on malformed content streams.
func pageContent(page pdf.Page) (content pdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoding page content: %v", r)
		}
	}()
	return page.Content(), nil
}

// fontNameBold detects bold weight from PostScript font name markers.
func fontNameBold(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") ||
		strings.Contains(f, "black") ||
		strings.Contains(f, "heavy") ||
		strings.Contains(f, "semibold") ||
		strings.Contains(f, "demibold")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
