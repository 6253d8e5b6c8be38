package outline

import (
	"strings"

	"github.com/dgallion1/docoutline/internal/doc"
)

// Title is a detected document title together with the page-0 lines it
// was assembled from. Multi-line titles are joined into Text, but each
// constituent line must also be excluded from heading detection on its
// own, so the fold keys of the consumed lines are carried along.
type Title struct {
	Text string

	keys map[string]bool
}

// Excludes reports whether a line was consumed by the title: either the
// full joined text anywhere in the document, or one of the title's
// constituent lines on page 0.
func (t Title) Excludes(s doc.TextSpan) bool {
	key := foldKey(s.Text)
	if key == "" {
		return false
	}
	if key == foldKey(t.Text) {
		return true
	}
	return s.Page == 0 && t.keys[key]
}

// DetectTitle isolates the document title from page 0. It selects the
// spans belonging to the largest size tier present on page 0; a run of
// consecutive such spans is joined with single spaces. When page 0 has
// nothing above body size the single largest span is used, and an empty
// title is returned for a document with no page-0 spans at all.
//
// Spans must already be normalized.
func DetectTitle(spans []doc.TextSpan, profile FontProfile) Title {
	var first []doc.TextSpan
	for _, s := range spans {
		if s.Page == 0 {
			first = append(first, s)
		}
	}
	if len(first) == 0 {
		return Title{}
	}

	// Best (lowest) tier rank present on page 0.
	best := 0
	for _, s := range first {
		if r := profile.TierRank(s.Size); r > 0 && (best == 0 || r < best) {
			best = r
		}
	}

	if best == 0 {
		// No span above body size: fall back to the largest span.
		largest := first[0]
		for _, s := range first[1:] {
			if s.Size > largest.Size {
				largest = s
			}
		}
		return newTitle([]string{largest.Text})
	}

	// Join the first consecutive run of spans at the best rank.
	var parts []string
	inRun := false
	for _, s := range first {
		if profile.TierRank(s.Size) == best {
			parts = append(parts, s.Text)
			inRun = true
		} else if inRun {
			break
		}
	}
	return newTitle(parts)
}

func newTitle(parts []string) Title {
	t := Title{
		Text: strings.TrimSpace(strings.Join(parts, " ")),
		keys: make(map[string]bool, len(parts)),
	}
	for _, p := range parts {
		if key := foldKey(p); key != "" {
			t.keys[key] = true
		}
	}
	return t
}
