package richtext

import "strings"

// Parse converts a markdown-like body into a Document in a single
// left-to-right pass over its lines. Recognition order per line: blank
// separator, divider (`---`, `***`, `___`), heading (`#`×1-6 + space),
// list item (`- `, `* `, or `<n>. `), paragraph. Contiguous list items of
// the same marker family collapse into one List block; everything else maps
// one line to one block. Soft-wrapped paragraphs are intentionally not
// merged, so each non-blank free-form line becomes its own Paragraph.
//
// Parse is pure and never fails: unrecognized markup ends up as paragraph
// text.
func Parse(body string) *Document {
	doc := &Document{Blocks: []Block{}}
	lines := splitLines(body)

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			i++

		case isDivider(trimmed):
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockDivider})
			i++

		case headingLevel(trimmed) > 0:
			level := headingLevel(trimmed)
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  BlockHeading,
				Level: level,
				Text:  trimmed[level+1:],
			})
			i++

		case isListItem(trimmed):
			block, consumed := parseList(lines[i:])
			doc.Blocks = append(doc.Blocks, block)
			i += consumed

		default:
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  BlockParagraph,
				Spans: Inline(trimmed),
			})
			i++
		}
	}

	return doc
}

// parseList greedily consumes contiguous list lines that share the leading
// line's marker family (ordered vs unordered) and returns them as a single
// List block together with the number of lines consumed.
func parseList(lines []string) (Block, int) {
	first := strings.TrimSpace(lines[0])
	_, ordered := splitOrderedItem(first)

	block := Block{Kind: BlockList, Ordered: ordered}
	consumed := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		var item string
		var ok bool
		if ordered {
			item, ok = splitOrderedItem(trimmed)
		} else {
			item, ok = splitUnorderedItem(trimmed)
		}
		if !ok {
			break
		}
		block.Items = append(block.Items, ListItem{Spans: Inline(item)})
		consumed++
	}

	return block, consumed
}

func splitLines(body string) []string {
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func isDivider(trimmed string) bool {
	return trimmed == "---" || trimmed == "***" || trimmed == "___"
}

// headingLevel returns 1-6 for a heading line, 0 otherwise. The marker must
// be followed by a space.
func headingLevel(trimmed string) int {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level >= len(trimmed) || trimmed[level] != ' ' {
		return 0
	}
	return level
}

func isListItem(trimmed string) bool {
	if _, ok := splitUnorderedItem(trimmed); ok {
		return true
	}
	_, ok := splitOrderedItem(trimmed)
	return ok
}

func splitUnorderedItem(trimmed string) (string, bool) {
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return trimmed[2:], true
	}
	return "", false
}

// splitOrderedItem returns the text after a "<number>. " marker.
func splitOrderedItem(trimmed string) (string, bool) {
	digits := leadingDigits(trimmed)
	if digits == 0 {
		return "", false
	}
	rest := trimmed[digits:]
	if !strings.HasPrefix(rest, ". ") {
		return "", false
	}
	return rest[2:], true
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
