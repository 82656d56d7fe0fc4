package richtext

import "strings"

const (
	// DefaultExcerptLength is the character budget applied when callers pass
	// a non-positive maximum.
	DefaultExcerptLength = 500

	// excerptMinLength is the point after which an overflowing paragraph is
	// dropped instead of partially appended.
	excerptMinLength = 100

	// excerptBoundaryWindow is how close to the budget the result must be
	// before sentence-boundary trimming kicks in.
	excerptBoundaryWindow = 10
)

// Excerpt derives a plain-text summary from a markdown-like body, bounded by
// maxLength characters. Markup is stripped, cleaned lines are grouped into
// paragraphs, and whole paragraphs are accumulated while they fit. Once the
// result would overflow, the paragraph is dropped when the summary already
// passed the minimum threshold, otherwise trimmed to fit. Results landing
// within a few characters of the budget are cut back to the last sentence
// boundary past the 60% mark, falling back to a hard truncation with an
// ellipsis.
//
// The returned string never exceeds maxLength.
func Excerpt(body string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	var result strings.Builder
	for _, paragraph := range cleanParagraphs(body) {
		sep := ""
		if result.Len() > 0 {
			sep = " "
		}
		if result.Len()+len(sep)+len(paragraph) <= maxLength {
			result.WriteString(sep)
			result.WriteString(paragraph)
			continue
		}
		if result.Len() >= excerptMinLength {
			break
		}
		remaining := maxLength - result.Len() - len(sep)
		if remaining > 0 {
			result.WriteString(sep)
			result.WriteString(paragraph[:remaining])
		}
		break
	}

	out := result.String()
	if len(out) < maxLength-excerptBoundaryWindow {
		return out
	}
	return trimToSentence(out, maxLength)
}

// trimToSentence prefers ending on a ". " boundary located after 60% of the
// budget; without one it hard-truncates and marks the cut with an ellipsis.
func trimToSentence(out string, maxLength int) string {
	floor := maxLength * 60 / 100
	if idx := strings.LastIndex(out, ". "); idx >= floor {
		return out[:idx+1]
	}
	cut := maxLength - 3
	if cut > len(out) {
		cut = len(out)
	}
	return out[:cut] + "..."
}

// cleanParagraphs strips block and inline markup line by line, then groups
// consecutive non-blank lines into space-joined paragraphs.
func cleanParagraphs(body string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range splitLines(body) {
		cleaned := cleanLine(strings.TrimSpace(line))
		if cleaned == "" {
			flush()
			continue
		}
		current = append(current, cleaned)
	}
	flush()

	return paragraphs
}

// cleanLine reduces one source line to its visible text: divider lines
// vanish, heading/blockquote/list markers are dropped, and bold, italic,
// code, and link markup collapse to their inner text.
func cleanLine(trimmed string) string {
	if isDivider(trimmed) {
		return ""
	}
	if level := headingLevel(trimmed); level > 0 {
		trimmed = trimmed[level+1:]
	}
	for strings.HasPrefix(trimmed, "> ") {
		trimmed = trimmed[2:]
	}
	if item, ok := splitUnorderedItem(trimmed); ok {
		trimmed = item
	} else if item, ok := splitOrderedItem(trimmed); ok {
		trimmed = item
	}
	return strings.TrimSpace(stripInlineMarkup(trimmed))
}

// stripInlineMarkup flattens inline formatting to plain text using the same
// tokenizer the parser relies on, then removes code ticks the tokenizer does
// not treat as special.
func stripInlineMarkup(line string) string {
	var b strings.Builder
	for _, span := range Inline(line) {
		b.WriteString(span.Text)
	}
	return strings.ReplaceAll(b.String(), "`", "")
}
