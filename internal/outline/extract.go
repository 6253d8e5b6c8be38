// Package outline classifies font-annotated text spans into a document
// outline: a title plus H1 to H3 headings tagged with page numbers.
//
// The pipeline is purely functional over immutable inputs. Spans are
// normalized into logical lines, a per-document font profile establishes
// the body-text baseline and the size tiers above it, the title is
// isolated from page 0, every remaining line is scored against the
// heading criteria, accepted candidates are leveled, and repeats are
// collapsed. The same span sequence always yields the same outline.
package outline

import "github.com/dgallion1/docoutline/internal/doc"

// Extract runs the full classification pipeline over one document's
// spans and returns its outline. It is total: an empty or degenerate
// span sequence produces an outline with an empty title and no headings,
// never an error.
func Extract(spans []doc.TextSpan, opts Options) doc.Outline {
	opts = opts.normalized()

	lines := Normalize(spans)
	profile := AnalyzeFonts(lines, opts)
	title := DetectTitle(lines, profile)

	cands := FilterCandidates(lines, profile, title, opts)
	headings := Deduplicate(AssignLevels(cands), opts)

	return doc.Outline{Title: title.Text, Headings: headings}
}
