package doc

// TextSpan is a contiguous run of text sharing one font size and weight,
// rendered on one page. Spans are produced by a source provider and are
// immutable once created.
type TextSpan struct {
	Text     string  // Trimmed text content (non-empty after normalization)
	Size     float64 // Font size in points (0 if the source has no sizing)
	Bold     bool    // Weight flag
	Page     int     // 0-based page index
	Position float64 // Vertical position; ascending = reading order within a page
}

// Level is the outline depth of a heading.
type Level string

const (
	LevelH1 Level = "H1"
	LevelH2 Level = "H2"
	LevelH3 Level = "H3"
)

// Heading is a single leveled outline entry.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the result for one document: a title plus headings in
// reading order (page ascending, then position ascending within a page).
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}
