package generation

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter captures the optional YAML header some providers emit ahead of
// the generated body. Populated fields override the derived values.
type FrontMatter struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// splitFrontMatter separates an optional front matter header from the
// generated text. Inputs without a header, or with one that fails to parse,
// pass through untouched.
func splitFrontMatter(text string) (FrontMatter, string) {
	var fm FrontMatter
	rest, err := frontmatter.Parse(strings.NewReader(text), &fm)
	if err != nil {
		return FrontMatter{}, text
	}
	return fm, string(rest)
}

// extractTitle pulls the first level-1 heading out of the body, returning
// the heading text and the body without that line. Bodies without a level-1
// heading synthesize "Summary: {subject}" and stay unchanged.
func extractTitle(body, subject string) (string, string) {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			title := strings.TrimSpace(trimmed[2:])
			remaining := append(lines[:i:i], lines[i+1:]...)
			return title, strings.Join(remaining, "\n")
		}
	}
	return "Summary: " + subject, body
}
