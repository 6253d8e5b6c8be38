package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docoutline/internal/doc"
)

// TextProvider handles plain text files. Every line becomes a body-size
// span; the numbering and ALL-CAPS criteria downstream still apply.
type TextProvider struct{}

func (p *TextProvider) Spans(r io.Reader, filename string) ([]doc.TextSpan, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var spans []doc.TextSpan
	pos := 0.0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		spans = append(spans, doc.TextSpan{
			Text:     line,
			Size:     sizeBody,
			Page:     0,
			Position: pos,
		})
		pos += spanStep
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return spans, nil
}
