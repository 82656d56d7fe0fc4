package openaiprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/goliatone/go-scribe/pkg/interfaces"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Config carries the connection settings for the OpenAI-backed provider and
// index adapters.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Provider implements interfaces.GenerationProvider on top of the official
// openai-go SDK (chat completions).
type Provider struct {
	client openai.Client
	model  string
}

// New validates the configuration and builds a Provider.
func New(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai provider: api key missing")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Provider{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Generate runs one chat completion for the request and maps the first
// choice onto a GenerationResult.
func (p *Provider) Generate(ctx context.Context, req interfaces.GenerationRequest) (interfaces.GenerationResult, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(req.Instructions),
		openai.UserMessage(userPrompt(req)),
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: msgs,
	})
	if err != nil {
		return interfaces.GenerationResult{}, err
	}
	if len(resp.Choices) == 0 {
		return interfaces.GenerationResult{}, errors.New("openai provider: empty choices")
	}

	choice := resp.Choices[0]
	status := interfaces.GenerationStatusCompleted
	if choice.FinishReason != "" && choice.FinishReason != "stop" {
		status = string(choice.FinishReason)
	}
	return interfaces.GenerationResult{
		Status: status,
		Text:   choice.Message.Content,
	}, nil
}

func userPrompt(req interfaces.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	if req.IndexID != "" {
		fmt.Fprintf(&b, "Base the article on the documents stored in index %s.\n", req.IndexID)
	}
	return b.String()
}
