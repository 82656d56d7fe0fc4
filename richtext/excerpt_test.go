package richtext

import (
	"strings"
	"testing"
)

func TestExcerptStripsMarkup(t *testing.T) {
	body := "# Heading\n\nSome **bold** and *italic* text with a [link](https://example.com).\n\n> quoted insight\n\n- item one\n- item two\n\n---"

	got := Excerpt(body, DefaultExcerptLength)
	want := "Heading Some bold and italic text with a link. quoted insight item one item two"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExcerptNeverExceedsBudget(t *testing.T) {
	bodies := []string{
		"short",
		strings.Repeat("word ", 500),
		strings.Repeat("sentence. ", 200),
		"# Heading\n\n" + strings.Repeat("x", 1000),
	}
	for _, body := range bodies {
		for _, max := range []int{50, 100, 500} {
			if got := Excerpt(body, max); len(got) > max {
				t.Fatalf("excerpt length %d exceeds budget %d", len(got), max)
			}
		}
	}
}

func TestExcerptJoinsParagraphs(t *testing.T) {
	got := Excerpt("First paragraph.\n\nSecond paragraph.", 500)
	if got != "First paragraph. Second paragraph." {
		t.Fatalf("unexpected excerpt: %q", got)
	}
}

func TestExcerptStopsAfterMinimumThreshold(t *testing.T) {
	first := strings.Repeat("a", 150)
	second := strings.Repeat("b", 100)

	got := Excerpt(first+"\n\n"+second, 200)
	if got != first {
		t.Fatalf("expected only the first paragraph, got %q", got)
	}
}

func TestExcerptFillsBelowMinimumThreshold(t *testing.T) {
	// A short opener below the minimum pulls in a partial second paragraph.
	first := strings.Repeat("a", 40)
	second := strings.Repeat("b", 400)

	got := Excerpt(first+"\n\n"+second, 200)
	if len(got) > 200 {
		t.Fatalf("excerpt length %d exceeds budget", len(got))
	}
	if !strings.HasPrefix(got, first+" b") {
		t.Fatalf("expected partial second paragraph, got %q", got)
	}
}

func TestExcerptPrefersSentenceBoundary(t *testing.T) {
	body := strings.Repeat("a", 74) + ". " + strings.Repeat("b", 60)

	got := Excerpt(body, 100)
	want := strings.Repeat("a", 74) + "."
	if got != want {
		t.Fatalf("expected sentence-boundary cut %q, got %q", want, got)
	}
}

func TestExcerptFallsBackToEllipsis(t *testing.T) {
	body := strings.Repeat("c", 150)

	got := Excerpt(body, 100)
	if len(got) != 100 {
		t.Fatalf("expected exactly 100 chars, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis marker, got %q", got)
	}
}

func TestExcerptDefaultBudget(t *testing.T) {
	body := strings.Repeat("d", 1000)
	if got := Excerpt(body, 0); len(got) > DefaultExcerptLength {
		t.Fatalf("default budget not applied: %d", len(got))
	}
}

func TestExcerptEmptyBody(t *testing.T) {
	if got := Excerpt("", 500); got != "" {
		t.Fatalf("expected empty excerpt, got %q", got)
	}
}
