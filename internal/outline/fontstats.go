package outline

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/doc"
)

// FontProfile holds the per-document font statistics every downstream
// stage reads. It is computed once and never mutated.
type FontProfile struct {
	// BodySize is the size carrying the most text, rounded to 0.1pt.
	// Zero when the document has no sized spans.
	BodySize float64

	// Tiers are the distinct sizes above BodySize, descending. Rank of
	// a tier is its index + 1.
	Tiers []float64

	tolerance float64
}

// AnalyzeFonts computes the document's font profile. Sizes are weighted
// by character count so short bold labels do not skew the body baseline.
// Spans with non-positive sizes are ignored. Never fails: an empty or
// unsized span sequence yields a zero profile with no tiers.
func AnalyzeFonts(spans []doc.TextSpan, opts Options) FontProfile {
	opts = opts.normalized()
	profile := FontProfile{tolerance: opts.SizeTolerance}

	weights := make(map[float64]int)
	for _, s := range spans {
		if s.Size <= 0 {
			continue
		}
		weights[roundSize(s.Size)] += utf8.RuneCountInString(s.Text)
	}
	if len(weights) == 0 {
		return profile
	}

	// Body = heaviest size; ties break toward the smaller size, since
	// body text runs smaller than headings.
	for size, w := range weights {
		bw := weights[profile.BodySize]
		if w > bw || (w == bw && (profile.BodySize == 0 || size < profile.BodySize)) {
			profile.BodySize = size
		}
	}

	floor := profile.BodySize * (1 + profile.tolerance)
	for size := range weights {
		if size > floor {
			profile.Tiers = append(profile.Tiers, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(profile.Tiers)))

	return profile
}

// TierRank returns the 1-based rank of the tier matching size (1 =
// largest), or 0 if the size matches no tier.
func (p FontProfile) TierRank(size float64) int {
	for i, tier := range p.Tiers {
		if math.Abs(size-tier) <= tier*p.tolerance {
			return i + 1
		}
	}
	return 0
}

// IsBodyOrLarger reports whether size is at least the body size, within
// tolerance. Always true when the document has no body baseline.
func (p FontProfile) IsBodyOrLarger(size float64) bool {
	if p.BodySize == 0 {
		return true
	}
	return size >= p.BodySize*(1-p.tolerance)
}

func roundSize(s float64) float64 {
	return math.Round(s*10) / 10
}
