package outline

// Options controls the tunable thresholds of the classification engine.
type Options struct {
	SizeTolerance   float64 // Relative tolerance when comparing sizes against tiers.
	MaxHeadingWords int     // Word-count cutoff for the size-tier criterion.
	MaxAllCapsWords int     // Word-count cutoff for the ALL-CAPS criterion.
	MaxHeadingRunes int     // Absolute length cutoff; longer lines are body text.
	DedupPageWindow int     // Page distance within which a repeated heading is dropped.
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		SizeTolerance:   0.02,
		MaxHeadingWords: 20,
		MaxAllCapsWords: 10,
		MaxHeadingRunes: 200,
		DedupPageWindow: 3,
	}
}

// normalized fills in zero fields so every stage can assume sane values.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.SizeTolerance <= 0 {
		o.SizeTolerance = def.SizeTolerance
	}
	if o.MaxHeadingWords <= 0 {
		o.MaxHeadingWords = def.MaxHeadingWords
	}
	if o.MaxAllCapsWords <= 0 {
		o.MaxAllCapsWords = def.MaxAllCapsWords
	}
	if o.MaxHeadingRunes <= 0 {
		o.MaxHeadingRunes = def.MaxHeadingRunes
	}
	if o.DedupPageWindow <= 0 {
		o.DedupPageWindow = def.DedupPageWindow
	}
	return o
}
