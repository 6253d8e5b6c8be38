package outline

import (
	"reflect"
	"testing"

	"github.com/dgallion1/docoutline/internal/doc"
)

func TestDeduplicate_RunningHeaderDropped(t *testing.T) {
	headings := []doc.Heading{
		{Level: doc.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: doc.LevelH2, Text: "1.1 Background", Page: 1},
		{Level: doc.LevelH1, Text: "1. Introduction", Page: 2},
		{Level: doc.LevelH1, Text: "1. Introduction", Page: 3},
	}
	got := Deduplicate(headings, DefaultOptions())

	want := []doc.Heading{
		{Level: doc.LevelH1, Text: "1. Introduction", Page: 1},
		{Level: doc.LevelH2, Text: "1.1 Background", Page: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDeduplicate_HeaderOnEveryPageStaysSuppressed(t *testing.T) {
	// The last-seen page advances on dropped occurrences too, so a
	// header repeating on each of many pages never resurfaces.
	headings := []doc.Heading{
		{Level: doc.LevelH1, Text: "PRODUCT MANUAL", Page: 0},
		{Level: doc.LevelH1, Text: "1. Setup", Page: 0},
	}
	for page := 1; page <= 20; page++ {
		headings = append(headings, doc.Heading{Level: doc.LevelH1, Text: "PRODUCT MANUAL", Page: page})
	}
	got := Deduplicate(headings, DefaultOptions())

	if len(got) != 2 {
		t.Fatalf("expected 2 headings, got %d: %+v", len(got), got)
	}
}

func TestDeduplicate_AdjacentIdenticalSamePage(t *testing.T) {
	headings := []doc.Heading{
		{Level: doc.LevelH3, Text: "Appendix", Page: 4},
		{Level: doc.LevelH3, Text: "appendix", Page: 4},
	}
	got := Deduplicate(headings, DefaultOptions())
	if len(got) != 1 {
		t.Errorf("case-folded adjacent duplicate not collapsed: %+v", got)
	}
}

func TestDeduplicate_FarApartRepeatsKept(t *testing.T) {
	headings := []doc.Heading{
		{Level: doc.LevelH1, Text: "Overview", Page: 0},
		{Level: doc.LevelH2, Text: "Details", Page: 2},
		{Level: doc.LevelH1, Text: "Overview", Page: 30},
	}
	got := Deduplicate(headings, DefaultOptions())
	if len(got) != 3 {
		t.Errorf("distant repeat should be kept, got %+v", got)
	}
}

func TestDeduplicate_DifferentLevelsKept(t *testing.T) {
	// A chapter title reused as a nearby cross-reference at another
	// level is not a running header.
	headings := []doc.Heading{
		{Level: doc.LevelH1, Text: "Glossary", Page: 5},
		{Level: doc.LevelH2, Text: "Terms", Page: 5},
		{Level: doc.LevelH3, Text: "Glossary", Page: 6},
	}
	got := Deduplicate(headings, DefaultOptions())
	if len(got) != 3 {
		t.Errorf("same text at different level should be kept, got %+v", got)
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	headings := []doc.Heading{
		{Level: doc.LevelH1, Text: "DOC TITLE", Page: 0},
		{Level: doc.LevelH1, Text: "1.0 Overview", Page: 0},
		{Level: doc.LevelH1, Text: "DOC TITLE", Page: 1},
		{Level: doc.LevelH1, Text: "2.0 Details", Page: 1},
		{Level: doc.LevelH1, Text: "DOC TITLE", Page: 2},
		{Level: doc.LevelH1, Text: "DOC TITLE", Page: 8},
		{Level: doc.LevelH1, Text: "3.0 Findings", Page: 8},
	}
	once := Deduplicate(headings, DefaultOptions())
	twice := Deduplicate(once, DefaultOptions())
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent:\n once %+v\ntwice %+v", once, twice)
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	if got := Deduplicate(nil, DefaultOptions()); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}
