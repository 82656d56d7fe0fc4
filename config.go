package scribe

import (
	"time"

	"github.com/goliatone/go-scribe/article"
	"github.com/goliatone/go-scribe/internal/generation"
	"github.com/goliatone/go-scribe/internal/logging/gologger"
	openaiprovider "github.com/goliatone/go-scribe/internal/provider/openai"
	"github.com/goliatone/go-scribe/pkg/storage"
	"github.com/goliatone/go-scribe/richtext"
)

type (
	// StorageConfig selects the database driver and DSN.
	StorageConfig = storage.Config
	// ProviderConfig carries OpenAI connection settings.
	ProviderConfig = openaiprovider.Config
	// LoggingConfig controls the structured logger.
	LoggingConfig = gologger.Config
)

// PollerConfig bounds the content index readiness wait.
type PollerConfig struct {
	Attempts int           `json:"attempts"`
	Interval time.Duration `json:"interval"`
}

// GenerationConfig tunes the article pipeline.
type GenerationConfig struct {
	// AuthorRole selects the byline attached to generated articles.
	AuthorRole string `json:"author_role"`
	// ExcerptLength caps the derived excerpt in characters.
	ExcerptLength int `json:"excerpt_length"`
	// Instructions overrides the system prompt sent to the provider.
	Instructions string `json:"instructions,omitempty"`
}

// Config is the top level module configuration.
type Config struct {
	Storage    StorageConfig    `json:"storage"`
	Provider   ProviderConfig   `json:"provider"`
	Poller     PollerConfig     `json:"poller"`
	Generation GenerationConfig `json:"generation"`
	Logging    LoggingConfig    `json:"logging"`
	// CreateSchema creates the article tables on startup. Intended for the
	// embedded SQLite deployment; Postgres schemas belong to migrations.
	CreateSchema bool `json:"create_schema"`
}

// DefaultConfig returns a configuration suitable for a local SQLite run.
// The provider API key must still be supplied.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: storage.DriverSQLite,
			DSN:    storage.DefaultSQLiteDSN,
		},
		Provider: ProviderConfig{
			Model: openaiprovider.DefaultModel,
		},
		Poller: PollerConfig{
			Attempts: generation.DefaultPollAttempts,
			Interval: generation.DefaultPollInterval,
		},
		Generation: GenerationConfig{
			AuthorRole:    article.DefaultAuthorRole,
			ExcerptLength: richtext.DefaultExcerptLength,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		CreateSchema: true,
	}
}
