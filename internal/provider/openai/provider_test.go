package openaiprovider

import (
	"strings"
	"testing"

	"github.com/goliatone/go-scribe/pkg/interfaces"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewIndex(Config{}); err == nil {
		t.Fatalf("expected error for missing api key")
	}

	provider, err := New(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if provider.model != DefaultModel {
		t.Fatalf("expected default model, got %q", provider.model)
	}
}

func TestUserPromptIncludesSubjectAndIndex(t *testing.T) {
	prompt := userPrompt(interfaces.GenerationRequest{
		Subject: "Distributed Tracing",
		IndexID: "vs_123",
	})
	if !strings.Contains(prompt, "Distributed Tracing") {
		t.Fatalf("missing subject: %q", prompt)
	}
	if !strings.Contains(prompt, "vs_123") {
		t.Fatalf("missing index reference: %q", prompt)
	}

	prompt = userPrompt(interfaces.GenerationRequest{Subject: "X"})
	if strings.Contains(prompt, "index") {
		t.Fatalf("index line should be omitted: %q", prompt)
	}
}
