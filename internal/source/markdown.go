package source

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/docoutline/internal/doc"
)

// MarkdownProvider handles Markdown files using goldmark. ATX heading
// levels become synthetic-size bold spans; everything else is body text.
type MarkdownProvider struct{}

func (p *MarkdownProvider) Spans(r io.Reader, filename string) ([]doc.TextSpan, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	var spans []doc.TextSpan
	pos := 0.0

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if strings.TrimSpace(title) == "" {
				continue
			}
			spans = append(spans, doc.TextSpan{
				Text:     title,
				Size:     headingSize(node.Level),
				Bold:     true,
				Page:     0,
				Position: pos,
			})
			pos += spanStep
		default:
			for _, line := range strings.Split(extractText(n, src), "\n") {
				if strings.TrimSpace(line) == "" {
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
		}
	}
	return spans, nil
}

// extractText gets the text content of a goldmark AST node. Blocks with
// children are read through those children; after inline parsing the
// children cover the same source as Lines(), so reading both would emit
// every line twice. Only childless leaf blocks (code blocks) fall back
// to Lines().
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer

	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
			buf.WriteByte('\n')
		}
		return strings.TrimSpace(buf.String())
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
			continue
		}
		text := extractText(c, src)
		if text == "" {
			continue
		}
		// Nested blocks (list items) each start on their own line.
		if c.Type() == ast.TypeBlock && buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}
	return strings.TrimSpace(buf.String())
}
