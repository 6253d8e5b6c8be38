package outline

import "github.com/dgallion1/docoutline/internal/doc"

// Deduplicate collapses repeated headings. A heading is dropped when it
// is textually identical to the immediately preceding kept heading, or
// when the same text at the same level was last seen within the page
// window (running headers repeated per page). The last-seen page advances
// on every occurrence, dropped or kept, so a header repeating on each
// page stays suppressed. Identical text at a different level, or far
// apart in the document, is retained.
//
// The fold carries no state beyond its return value: running it on its
// own output changes nothing.
func Deduplicate(headings []doc.Heading, opts Options) []doc.Heading {
	opts = opts.normalized()

	lastPage := make(map[dedupKey]int)

	kept := make([]doc.Heading, 0, len(headings))
	for _, h := range headings {
		text := foldKey(h.Text)
		key := dedupKey{text: text, level: h.Level}

		if len(kept) > 0 && foldKey(kept[len(kept)-1].Text) == text {
			continue
		}
		if page, ok := lastPage[key]; ok && h.Page-page <= opts.DedupPageWindow {
			lastPage[key] = h.Page
			continue
		}

		lastPage[key] = h.Page
		kept = append(kept, h)
	}
	return kept
}

type dedupKey struct {
	text  string
	level doc.Level
}
