package article

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
)

// slugMaxLength bounds the normalized portion before the uniqueness suffix.
const slugMaxLength = 100

// DeriveSlug builds a URL-safe identifier from an article title: the title
// is normalized to lowercase hyphenated form, truncated to 100 characters,
// and suffixed with a base-36 timestamp so repeated titles stay unique.
func DeriveSlug(title string, now time.Time) string {
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		normalized = fallbackSlug(title)
	}
	if len(normalized) > slugMaxLength {
		normalized = strings.Trim(normalized[:slugMaxLength], "-")
	}
	if normalized == "" {
		normalized = "article"
	}
	return normalized + "-" + strconv.FormatInt(now.UnixMilli(), 36)
}

// IsValidSlug reports whether the value matches the default slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// fallbackSlug mirrors the normalizer for inputs it rejects: lowercase,
// keep word characters, spaces and hyphens, collapse whitespace to single
// hyphens, trim boundary hyphens.
func fallbackSlug(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '_':
			b.WriteRune(' ')
		}
	}
	collapsed := strings.Join(strings.Fields(b.String()), "-")
	return strings.Trim(collapsed, "-")
}
