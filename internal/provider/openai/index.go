package openaiprovider

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/goliatone/go-scribe/pkg/interfaces"
)

// Index exposes OpenAI vector stores through the ContentIndex contract. The
// identifier handed to Status is a vector store ID; file counts report how
// far ingestion has progressed.
type Index struct {
	client openai.Client
}

// NewIndex builds a vector-store backed ContentIndex.
func NewIndex(cfg Config) (*Index, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai index: api key missing")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Index{client: openai.NewClient(opts...)}, nil
}

// Status reports the in-progress and completed file counts for a vector
// store.
func (i *Index) Status(ctx context.Context, indexID string) (interfaces.IndexStatus, error) {
	if indexID == "" {
		return interfaces.IndexStatus{}, errors.New("openai index: index id missing")
	}
	store, err := i.client.VectorStores.Get(ctx, indexID)
	if err != nil {
		return interfaces.IndexStatus{}, err
	}
	return interfaces.IndexStatus{
		InProgress: int(store.FileCounts.InProgress),
		Completed:  int(store.FileCounts.Completed),
	}, nil
}
