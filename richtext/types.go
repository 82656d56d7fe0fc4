package richtext

// BlockKind discriminates the block variants a Document can hold.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockDivider   BlockKind = "divider"
)

// Span is a contiguous run of inline text with uniform formatting. Href is
// empty for non-link spans. Concatenating the Text of every span in a
// paragraph reproduces the visible text of the source line.
type Span struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Href   string `json:"href,omitempty"`
}

// ListItem wraps a single-paragraph list entry.
type ListItem struct {
	Spans []Span `json:"spans"`
}

// Block is one node in the document tree. Only the fields relevant to the
// Kind are populated: Level/Text for headings, Spans for paragraphs,
// Ordered/Items for lists, nothing for dividers. Heading text is stored
// verbatim; inline formatting is not applied to it.
type Block struct {
	Kind    BlockKind  `json:"kind"`
	Level   int        `json:"level,omitempty"`
	Text    string     `json:"text,omitempty"`
	Spans   []Span     `json:"spans,omitempty"`
	Ordered bool       `json:"ordered,omitempty"`
	Items   []ListItem `json:"items,omitempty"`
}

// Document is an ordered tree of typed blocks consumable by a rendering
// layer. Block order preserves source line order.
type Document struct {
	Blocks []Block `json:"blocks"`
}
