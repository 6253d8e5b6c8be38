package outline

import "github.com/dgallion1/docoutline/internal/doc"

// AssignLevels maps each candidate to H1/H2/H3. Explicit numbering depth
// outranks font size, so a rank-1 line reading "2.1 Overview" is H2; a
// candidate with neither signal defaults to H3, the lowest-confidence
// slot. Document order is preserved.
func AssignLevels(cands []Candidate) []doc.Heading {
	headings := make([]doc.Heading, 0, len(cands))
	for _, c := range cands {
		headings = append(headings, doc.Heading{
			Level: levelFor(c),
			Text:  c.Span.Text,
			Page:  c.Span.Page,
		})
	}
	return headings
}

func levelFor(c Candidate) doc.Level {
	switch {
	case c.NumberingDepth > 0:
		return depthLevel(c.NumberingDepth)
	case c.TierRank > 0:
		return depthLevel(c.TierRank)
	default:
		return doc.LevelH3
	}
}

func depthLevel(n int) doc.Level {
	switch n {
	case 1:
		return doc.LevelH1
	case 2:
		return doc.LevelH2
	default:
		return doc.LevelH3
	}
}
