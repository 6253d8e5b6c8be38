package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/docoutline/internal/doc"
)

// samePositionTolerance is the maximum position difference for two spans
// to be treated as parts of the same logical line.
const samePositionTolerance = 1.0

// Normalize cleans raw spans into logical lines: text is trimmed, empty
// spans are dropped, spans are sorted into reading order, and adjacent
// same-style spans on one line are merged. The input slice is not modified.
func Normalize(spans []doc.TextSpan) []doc.TextSpan {
	out := make([]doc.TextSpan, 0, len(spans))
	for _, s := range spans {
		s.Text = collapseWhitespace(s.Text)
		if s.Text == "" {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].Position < out[j].Position
	})

	merged := out[:0]
	for _, s := range out {
		if len(merged) > 0 && mergeable(merged[len(merged)-1], s) {
			merged[len(merged)-1].Text += " " + s.Text
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// mergeable reports whether b continues the same logical line as a.
func mergeable(a, b doc.TextSpan) bool {
	return a.Page == b.Page &&
		a.Bold == b.Bold &&
		sameSize(a.Size, b.Size) &&
		b.Position-a.Position <= samePositionTolerance
}

func sameSize(a, b float64) bool {
	d := a - b
	return d < 0.01 && d > -0.01
}

// collapseWhitespace trims and folds internal whitespace runs to one space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
