package source

import (
	"strings"
	"testing"
)

func TestHTMLProvider_HeadingsAndBody(t *testing.T) {
	input := `<html><head><title>ignored</title><style>p{}</style></head><body>
<h1>Release Notes</h1>
<p>Paragraph one with a reasonable amount of ordinary body text.</p>
<h2>Fixes</h2>
<p>Paragraph two, also body text.</p>
<script>var x = 1;</script>
</body></html>`

	p := &HTMLProvider{}
	spans, err := p.Spans(strings.NewReader(input), "notes.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var texts []string
	for _, s := range spans {
		texts = append(texts, s.Text)
	}
	want := []string{
		"Release Notes",
		"Paragraph one with a reasonable amount of ordinary body text.",
		"Fixes",
		"Paragraph two, also body text.",
	}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("span %d: got %q, want %q", i, texts[i], want[i])
		}
	}

	if spans[0].Size != sizeH1 || !spans[0].Bold {
		t.Errorf("h1 span wrong: %+v", spans[0])
	}
	if spans[2].Size != sizeH2 || !spans[2].Bold {
		t.Errorf("h2 span wrong: %+v", spans[2])
	}
	if spans[1].Size != sizeBody || spans[1].Bold {
		t.Errorf("body span wrong: %+v", spans[1])
	}
}

func TestHTMLProvider_NoBodyTag(t *testing.T) {
	input := `<h3>Fragment Heading</h3><p>fragment text</p>`
	p := &HTMLProvider{}
	spans, err := p.Spans(strings.NewReader(input), "frag.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// html.Parse synthesizes a body; both elements must surface.
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", spans)
	}
	if spans[0].Size != sizeH3 {
		t.Errorf("h3 size: got %v, want %v", spans[0].Size, sizeH3)
	}
}

func TestHTMLProvider_EmptyDocument(t *testing.T) {
	p := &HTMLProvider{}
	spans, err := p.Spans(strings.NewReader(""), "empty.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %+v", spans)
	}
}
