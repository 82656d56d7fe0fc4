package richtext

import "strings"

// Inline tokenizes a single line of text into an ordered, non-overlapping
// sequence of spans. At each cursor position the tokenizer tries, in order:
// a double-marker bold run, a single-marker italic run, a [label](url) link,
// then a maximal run of plain characters. A special character that opens no
// structured pattern is emitted as a one-character plain span. Malformed
// markup therefore degrades to plain text; Inline never fails.
//
// An empty line yields a single empty plain span so callers always receive
// at least one span per paragraph.
func Inline(line string) []Span {
	if line == "" {
		return []Span{{Text: ""}}
	}

	var spans []Span
	pos := 0

	for pos < len(line) {
		if span, next, ok := matchBold(line, pos); ok {
			spans = append(spans, span)
			pos = next
			continue
		}
		if span, next, ok := matchItalic(line, pos); ok {
			spans = append(spans, span)
			pos = next
			continue
		}
		if span, next, ok := matchLink(line, pos); ok {
			spans = append(spans, span)
			pos = next
			continue
		}
		if isInlineMarker(line[pos]) {
			// Unmatched special character: keep it visible.
			spans = append(spans, Span{Text: string(line[pos])})
			pos++
			continue
		}

		start := pos
		for pos < len(line) && !isInlineMarker(line[pos]) {
			pos++
		}
		spans = append(spans, Span{Text: line[start:pos]})
	}

	return spans
}

func isInlineMarker(c byte) bool {
	return c == '*' || c == '_' || c == '['
}

func matchBold(line string, pos int) (Span, int, bool) {
	for _, marker := range []string{"**", "__"} {
		if !strings.HasPrefix(line[pos:], marker) {
			continue
		}
		inner := line[pos+2:]
		end := strings.Index(inner, marker)
		if end < 0 {
			continue
		}
		return Span{Text: inner[:end], Bold: true}, pos + 2 + end + 2, true
	}
	return Span{}, pos, false
}

func matchItalic(line string, pos int) (Span, int, bool) {
	c := line[pos]
	if c != '*' && c != '_' {
		return Span{}, pos, false
	}
	inner := line[pos+1:]
	end := strings.IndexByte(inner, c)
	if end < 0 {
		return Span{}, pos, false
	}
	return Span{Text: inner[:end], Italic: true}, pos + 1 + end + 1, true
}

func matchLink(line string, pos int) (Span, int, bool) {
	if line[pos] != '[' {
		return Span{}, pos, false
	}
	rest := line[pos+1:]
	closeBracket := strings.IndexByte(rest, ']')
	if closeBracket < 0 {
		return Span{}, pos, false
	}
	afterLabel := rest[closeBracket+1:]
	if !strings.HasPrefix(afterLabel, "(") {
		return Span{}, pos, false
	}
	closeParen := strings.IndexByte(afterLabel, ')')
	if closeParen < 0 {
		return Span{}, pos, false
	}
	label := rest[:closeBracket]
	url := afterLabel[1:closeParen]
	return Span{Text: label, Href: url}, pos + 1 + closeBracket + 1 + closeParen + 1, true
}
