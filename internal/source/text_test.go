package source

import (
	"strings"
	"testing"
)

func TestTextProvider_LineSpans(t *testing.T) {
	input := "First line.\n\n   \nSECOND SECTION\nbody under it"
	p := &TextProvider{}
	spans, err := p.Spans(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"First line.", "SECOND SECTION", "body under it"}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, got %d", len(want), len(spans))
	}
	for i, w := range want {
		if spans[i].Text != w {
			t.Errorf("span %d: got %q, want %q", i, spans[i].Text, w)
		}
		if spans[i].Size != sizeBody {
			t.Errorf("span %d: size got %v, want %v", i, spans[i].Size, sizeBody)
		}
		if i > 0 && spans[i].Position <= spans[i-1].Position {
			t.Errorf("span %d: position not increasing", i)
		}
	}
}

func TestTextProvider_EmptyInput(t *testing.T) {
	p := &TextProvider{}
	spans, err := p.Spans(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected 0 spans, got %d", len(spans))
	}
}

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"report.pdf", true},
		{"notes.md", true},
		{"notes.markdown", true},
		{"page.html", true},
		{"page.htm", true},
		{"memo.docx", true},
		{"sheet.xlsx", true},
		{"plain.txt", true},
		{"image.png", false},
		{"archive.zip", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.filename, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected error", tt.filename)
		}
	}
}
