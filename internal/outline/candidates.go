package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/doc"
)

// Candidate is a normalized line judged heading-worthy, tagged with every
// classifier signal that matched. The level assigner consumes the richest
// available signal rather than a single boolean.
type Candidate struct {
	Span doc.TextSpan

	// NumberingDepth is the dot-separated depth of a leading numbering
	// pattern ("1.2.3" = 3, capped at 3). Zero when none matched.
	NumberingDepth int

	// TierRank is the 1-based rank of the span's size tier, zero when
	// the size is at or below body size.
	TierRank int

	// AllCaps marks a short all-capitals line.
	AllCaps bool

	// BoldAtBody marks a bold line at or above body size.
	BoldAtBody bool
}

var (
	// "1.2 Overview", "3.9.1 Detail" — one or more dot-separated groups,
	// optional trailing dot, followed by non-empty text.
	reNumberedNested = regexp.MustCompile(`^(\d+(?:\.\d+)+)\.?\s+\S`)
	// "1. Introduction" — single group requires the trailing dot.
	reNumberedTop = regexp.MustCompile(`^\d+\.\s+\S`)
	// "Chapter 4 Results", "Section 2: Scope".
	reChapter = regexp.MustCompile(`(?i)^(?:chapter|section)\s+\d+[.:]?\s+\S`)
)

// FilterCandidates scores every normalized line against the heading
// criteria and returns the accepted candidates in document order. The
// criteria are independent: any single match is sufficient. Lines
// consumed by the detected title and lines beyond the length cutoff are
// rejected regardless of other signals.
func FilterCandidates(spans []doc.TextSpan, profile FontProfile, title Title, opts Options) []Candidate {
	opts = opts.normalized()

	var cands []Candidate
	for _, s := range spans {
		if utf8.RuneCountInString(s.Text) > opts.MaxHeadingRunes {
			continue
		}
		if title.Excludes(s) {
			continue
		}

		words := len(strings.Fields(s.Text))
		c := Candidate{
			Span:           s,
			NumberingDepth: matchNumbering(s.Text),
			TierRank:       profile.TierRank(s.Size),
			AllCaps:        isAllCaps(s.Text) && words <= opts.MaxAllCapsWords,
			BoldAtBody:     s.Bold && (s.Size <= 0 || profile.IsBodyOrLarger(s.Size)),
		}

		tierHit := c.TierRank > 0 && words <= opts.MaxHeadingWords
		if tierHit || c.BoldAtBody || c.NumberingDepth > 0 || c.AllCaps {
			cands = append(cands, c)
		}
	}
	return cands
}

// matchNumbering returns the depth of a leading numbering pattern, capped
// at 3, or zero. Malformed numbering ("1..2") matches nothing.
func matchNumbering(text string) int {
	if m := reNumberedNested.FindStringSubmatch(text); m != nil {
		depth := strings.Count(m[1], ".") + 1
		if depth > 3 {
			depth = 3
		}
		return depth
	}
	if reNumberedTop.MatchString(text) || reChapter.MatchString(text) {
		return 1
	}
	return 0
}

// isAllCaps reports whether text is entirely upper-case with at least
// three letters, so purely numeric or punctuation lines never qualify.
func isAllCaps(text string) bool {
	letters := 0
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 3
}

// foldKey normalizes text for comparisons: case-folded, whitespace
// collapsed. Shared with the deduplicator.
func foldKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
