package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/docoutline/internal/doc"
)

// HTMLProvider handles HTML files. h1-h6 become synthetic-size bold
// spans; paragraph-level elements become body spans.
type HTMLProvider struct{}

func (p *HTMLProvider) Spans(r io.Reader, filename string) ([]doc.TextSpan, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var spans []doc.TextSpan
	pos := 0.0

	emit := func(text string, size float64, bold bool) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		spans = append(spans, doc.TextSpan{
			Text:     text,
			Size:     size,
			Bold:     bold,
			Page:     0,
			Position: pos,
		})
		pos += spanStep
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingTagLevel(n.Data); level > 0 {
				emit(textContent(n), headingSize(level), true)
				return // heading text already extracted
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote", "pre":
				emit(textContent(n), sizeBody, false)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}
	return spans, nil
}

func headingTagLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
