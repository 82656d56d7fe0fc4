package markdown

import (
	"strings"
	"testing"
)

func TestRendererProducesHTML(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("## Section\n\nBody with **bold** text."))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<h2") {
		t.Fatalf("expected heading tag, got %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold tag, got %q", html)
	}
}

func TestRendererEmptyInput(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(string(out)) != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
