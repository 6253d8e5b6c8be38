package outline

import (
	"testing"

	"github.com/dgallion1/docoutline/internal/doc"
)

func TestAnalyzeFonts_BodyWeightedByCharacters(t *testing.T) {
	// Three short 16pt labels vs one long 11pt paragraph: span counting
	// would pick 16pt, character weighting must pick 11pt.
	spans := []doc.TextSpan{
		{Text: "Intro", Size: 16, Page: 0, Position: 10},
		{Text: "Scope", Size: 16, Page: 0, Position: 20},
		{Text: "Goals", Size: 16, Page: 0, Position: 30},
		{Text: "A long paragraph of ordinary body text with many more characters than the labels.", Size: 11, Page: 0, Position: 40},
	}
	p := AnalyzeFonts(spans, DefaultOptions())

	if p.BodySize != 11 {
		t.Errorf("body size: got %v, want 11", p.BodySize)
	}
	if len(p.Tiers) != 1 || p.Tiers[0] != 16 {
		t.Errorf("tiers: got %v, want [16]", p.Tiers)
	}
	if r := p.TierRank(16); r != 1 {
		t.Errorf("TierRank(16): got %d, want 1", r)
	}
}

func TestAnalyzeFonts_TiersDescendingRanked(t *testing.T) {
	spans := []doc.TextSpan{
		{Text: "Plenty of body text to establish the twelve point baseline for this document.", Size: 12, Page: 0, Position: 40},
		{Text: "Mid", Size: 18, Page: 0, Position: 10},
		{Text: "Top", Size: 24, Page: 0, Position: 5},
		{Text: "Low", Size: 14, Page: 1, Position: 5},
	}
	p := AnalyzeFonts(spans, DefaultOptions())

	want := []float64{24, 18, 14}
	if len(p.Tiers) != len(want) {
		t.Fatalf("tiers: got %v, want %v", p.Tiers, want)
	}
	for i, size := range want {
		if p.Tiers[i] != size {
			t.Errorf("tier %d: got %v, want %v", i, p.Tiers[i], size)
		}
		if r := p.TierRank(size); r != i+1 {
			t.Errorf("TierRank(%v): got %d, want %d", size, r, i+1)
		}
	}
	if r := p.TierRank(12); r != 0 {
		t.Errorf("body size must not be a tier, got rank %d", r)
	}
}

func TestAnalyzeFonts_ToleranceGroupsNearbySizes(t *testing.T) {
	spans := []doc.TextSpan{
		{Text: "Body text long enough to dominate the character count comfortably.", Size: 12, Page: 0, Position: 30},
		{Text: "Heading", Size: 18, Page: 0, Position: 10},
	}
	p := AnalyzeFonts(spans, DefaultOptions())

	// 17.9pt is within 2% of the 18pt tier.
	if r := p.TierRank(17.9); r != 1 {
		t.Errorf("TierRank(17.9): got %d, want 1", r)
	}
	if r := p.TierRank(15); r != 0 {
		t.Errorf("TierRank(15): got %d, want 0", r)
	}
}

func TestAnalyzeFonts_UniformSingleSize(t *testing.T) {
	spans := []doc.TextSpan{
		{Text: "everything in this document", Size: 12, Page: 0, Position: 10},
		{Text: "uses the same size", Size: 12, Page: 1, Position: 10},
	}
	p := AnalyzeFonts(spans, DefaultOptions())

	if p.BodySize != 12 {
		t.Errorf("body size: got %v, want 12", p.BodySize)
	}
	if len(p.Tiers) != 0 {
		t.Errorf("expected no tiers for uniform document, got %v", p.Tiers)
	}
}

func TestAnalyzeFonts_EmptyAndUnsized(t *testing.T) {
	p := AnalyzeFonts(nil, DefaultOptions())
	if p.BodySize != 0 || len(p.Tiers) != 0 {
		t.Errorf("empty input: got body %v tiers %v", p.BodySize, p.Tiers)
	}

	// Non-positive sizes are excluded from the statistics.
	p = AnalyzeFonts([]doc.TextSpan{
		{Text: "SECTION HEADING", Size: 0, Page: 0, Position: 10},
		{Text: "negative", Size: -1, Page: 0, Position: 20},
	}, DefaultOptions())
	if p.BodySize != 0 || len(p.Tiers) != 0 {
		t.Errorf("unsized input: got body %v tiers %v", p.BodySize, p.Tiers)
	}
}

func TestAnalyzeFonts_RoundsToTenthPoint(t *testing.T) {
	spans := []doc.TextSpan{
		{Text: "body text with a slightly imprecise size from the extractor", Size: 11.96, Page: 0, Position: 10},
		{Text: "more body text at the nominally identical size value here", Size: 12.04, Page: 0, Position: 20},
	}
	p := AnalyzeFonts(spans, DefaultOptions())
	if p.BodySize != 12 {
		t.Errorf("body size: got %v, want 12 after rounding", p.BodySize)
	}
	if len(p.Tiers) != 0 {
		t.Errorf("rounded equal sizes must not form tiers, got %v", p.Tiers)
	}
}
