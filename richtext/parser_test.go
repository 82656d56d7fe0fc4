package richtext

import "testing"

func TestParseBlockSequence(t *testing.T) {
	body := "Body text here.\n\n## Section: Sub\n\nMore text."

	doc := Parse(body)
	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %+v", len(doc.Blocks), doc.Blocks)
	}

	if doc.Blocks[0].Kind != BlockParagraph {
		t.Fatalf("expected paragraph, got %s", doc.Blocks[0].Kind)
	}
	if doc.Blocks[1].Kind != BlockHeading || doc.Blocks[1].Level != 2 {
		t.Fatalf("expected level-2 heading, got %+v", doc.Blocks[1])
	}
	if doc.Blocks[1].Text != "Section: Sub" {
		t.Fatalf("expected heading text %q, got %q", "Section: Sub", doc.Blocks[1].Text)
	}
	if doc.Blocks[2].Kind != BlockParagraph {
		t.Fatalf("expected paragraph, got %s", doc.Blocks[2].Kind)
	}
}

func TestParseHeadingTextIsVerbatim(t *testing.T) {
	doc := Parse("### A **not bold** heading")
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	block := doc.Blocks[0]
	if block.Kind != BlockHeading || block.Level != 3 {
		t.Fatalf("expected level-3 heading, got %+v", block)
	}
	if block.Text != "A **not bold** heading" {
		t.Fatalf("heading text should keep markers, got %q", block.Text)
	}
	if len(block.Spans) != 0 {
		t.Fatalf("heading should carry no spans, got %+v", block.Spans)
	}
}

func TestParseUnorderedListGroupsContiguousItems(t *testing.T) {
	body := "- first\n- second\n- third\nclosing line"

	doc := Parse(body)
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(doc.Blocks), doc.Blocks)
	}

	list := doc.Blocks[0]
	if list.Kind != BlockList || list.Ordered {
		t.Fatalf("expected unordered list, got %+v", list)
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got := flatten(list.Items[i].Spans); got != want {
			t.Fatalf("item %d: expected %q, got %q", i, want, got)
		}
	}

	if doc.Blocks[1].Kind != BlockParagraph {
		t.Fatalf("expected trailing paragraph, got %+v", doc.Blocks[1])
	}
}

func TestParseListFamiliesDoNotMerge(t *testing.T) {
	body := "- bullet one\n* bullet two\n1. step one\n2. step two"

	doc := Parse(body)
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(doc.Blocks), doc.Blocks)
	}

	if doc.Blocks[0].Ordered || len(doc.Blocks[0].Items) != 2 {
		t.Fatalf("expected unordered list with 2 items, got %+v", doc.Blocks[0])
	}
	if !doc.Blocks[1].Ordered || len(doc.Blocks[1].Items) != 2 {
		t.Fatalf("expected ordered list with 2 items, got %+v", doc.Blocks[1])
	}
	if got := flatten(doc.Blocks[1].Items[0].Spans); got != "step one" {
		t.Fatalf("expected ordered item %q, got %q", "step one", got)
	}
}

func TestParseDividersAndBlanks(t *testing.T) {
	body := "para one\n\n---\n\n***\n___\npara two"

	doc := Parse(body)
	kinds := []BlockKind{BlockParagraph, BlockDivider, BlockDivider, BlockDivider, BlockParagraph}
	if len(doc.Blocks) != len(kinds) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(kinds), len(doc.Blocks), doc.Blocks)
	}
	for i, kind := range kinds {
		if doc.Blocks[i].Kind != kind {
			t.Fatalf("block %d: expected %s, got %s", i, kind, doc.Blocks[i].Kind)
		}
	}
}

func TestParseParagraphsAreNotMerged(t *testing.T) {
	doc := Parse("line one\nline two")
	if len(doc.Blocks) != 2 {
		t.Fatalf("soft-wrapped lines must stay separate, got %+v", doc.Blocks)
	}
}

func TestParseEmptyBody(t *testing.T) {
	doc := Parse("")
	if len(doc.Blocks) != 0 {
		t.Fatalf("expected empty document, got %+v", doc.Blocks)
	}
}

func TestParseInvalidHeadingFallsBackToParagraph(t *testing.T) {
	cases := []string{
		"####### seven hashes",
		"#no space after marker",
	}
	for _, body := range cases {
		doc := Parse(body)
		if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockParagraph {
			t.Fatalf("input %q: expected single paragraph, got %+v", body, doc.Blocks)
		}
	}
}

func flatten(spans []Span) string {
	out := ""
	for _, span := range spans {
		out += span.Text
	}
	return out
}
