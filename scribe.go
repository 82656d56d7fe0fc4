// Package scribe turns AI-generated prose into persisted CMS articles: it
// waits for a content index to finish ingesting, asks a generation provider
// for markdown, parses it into a structured rich-text document, and stores
// the article with slug, excerpt, and HTML projection.
package scribe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-scribe/article"
	generationcmd "github.com/goliatone/go-scribe/internal/commands/generation"
	"github.com/goliatone/go-scribe/internal/generation"
	"github.com/goliatone/go-scribe/internal/identity"
	"github.com/goliatone/go-scribe/internal/logging"
	"github.com/goliatone/go-scribe/internal/logging/gologger"
	openaiprovider "github.com/goliatone/go-scribe/internal/provider/openai"
	"github.com/goliatone/go-scribe/internal/storage"
	"github.com/goliatone/go-scribe/pkg/interfaces"
	pkgstorage "github.com/goliatone/go-scribe/pkg/storage"
)

// Result exports the generation run outcome.
type Result = generation.Result

// GenerationService exports the pipeline orchestrator.
type GenerationService = generation.Service

var (
	// ErrProviderRequired is returned when neither an API key nor a custom
	// provider is configured.
	ErrProviderRequired = errors.New("scribe: generation provider required (set provider api key or inject one)")
	// ErrIndexRequired is returned when no content index can be built.
	ErrIndexRequired = errors.New("scribe: content index required (set provider api key or inject one)")
)

// Module is the top level runtime façade.
type Module struct {
	db       *bun.DB
	jobs     *storage.BunGenerationJobRepository
	articles *storage.BunArticleRepository
	authors  *storage.BunAuthorRepository
	service  *generation.Service
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
}

// Option overrides a collaborator during construction.
type Option func(*moduleDeps)

type moduleDeps struct {
	db        *bun.DB
	provider  interfaces.GenerationProvider
	index     interfaces.ContentIndex
	logProv   interfaces.LoggerProvider
	extraOpts []generation.Option
}

// WithBunDB injects an existing database handle instead of opening one from
// Config.Storage.
func WithBunDB(db *bun.DB) Option {
	return func(d *moduleDeps) { d.db = db }
}

// WithGenerationProvider replaces the OpenAI-backed provider.
func WithGenerationProvider(p interfaces.GenerationProvider) Option {
	return func(d *moduleDeps) { d.provider = p }
}

// WithContentIndex replaces the OpenAI vector store index.
func WithContentIndex(i interfaces.ContentIndex) Option {
	return func(d *moduleDeps) { d.index = i }
}

// WithLoggerProvider replaces the default structured logger.
func WithLoggerProvider(p interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) { d.logProv = p }
}

// WithServiceOptions forwards options to the generation service constructor.
func WithServiceOptions(opts ...generation.Option) Option {
	return func(d *moduleDeps) { d.extraOpts = append(d.extraOpts, opts...) }
}

// New wires the module from configuration plus optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	deps := moduleDeps{}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	logProv := deps.logProv
	if logProv == nil {
		provider, err := gologger.NewProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		logProv = provider
	}
	logger := logging.ModuleLogger(logProv, "scribe")

	db := deps.db
	if db == nil {
		opened, err := pkgstorage.Open(cfg.Storage)
		if err != nil {
			return nil, err
		}
		db = opened
	}
	if cfg.CreateSchema {
		if err := pkgstorage.CreateTables(context.Background(), db); err != nil {
			return nil, err
		}
	}

	provider := deps.provider
	if provider == nil {
		if cfg.Provider.APIKey == "" {
			return nil, ErrProviderRequired
		}
		p, err := openaiprovider.New(cfg.Provider)
		if err != nil {
			return nil, err
		}
		provider = p
	}

	index := deps.index
	if index == nil {
		if cfg.Provider.APIKey == "" {
			return nil, ErrIndexRequired
		}
		i, err := openaiprovider.NewIndex(cfg.Provider)
		if err != nil {
			return nil, err
		}
		index = i
	}

	jobs := storage.NewBunGenerationJobRepository(db)
	articles := storage.NewBunArticleRepository(db)
	authors := storage.NewBunAuthorRepository(db)

	pollerOpts := []generation.PollerOption{
		generation.WithPollerLogger(logging.GenerationLogger(logProv)),
	}
	if cfg.Poller.Attempts > 0 {
		pollerOpts = append(pollerOpts, generation.WithPollAttempts(cfg.Poller.Attempts))
	}
	if cfg.Poller.Interval > 0 {
		pollerOpts = append(pollerOpts, generation.WithPollInterval(cfg.Poller.Interval))
	}
	poller := generation.NewPoller(index, pollerOpts...)

	serviceOpts := []generation.Option{
		generation.WithLogger(logging.GenerationLogger(logProv)),
	}
	if cfg.Generation.ExcerptLength > 0 {
		serviceOpts = append(serviceOpts, generation.WithExcerptLength(cfg.Generation.ExcerptLength))
	}
	if cfg.Generation.AuthorRole != "" {
		serviceOpts = append(serviceOpts, generation.WithAuthorRole(cfg.Generation.AuthorRole))
	}
	if cfg.Generation.Instructions != "" {
		serviceOpts = append(serviceOpts, generation.WithInstructions(cfg.Generation.Instructions))
	}
	serviceOpts = append(serviceOpts, deps.extraOpts...)

	service := generation.NewService(jobs, articles, authors, poller, provider, serviceOpts...)

	return &Module{
		db:       db,
		jobs:     jobs,
		articles: articles,
		authors:  authors,
		service:  service,
		provider: logProv,
		logger:   logger,
	}, nil
}

// DB exposes the underlying database handle for advanced integrations.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Generation returns the configured pipeline service.
func (m *Module) Generation() *GenerationService {
	return m.service
}

// Run executes the generation pipeline for a job.
func (m *Module) Run(ctx context.Context, jobID uuid.UUID) (*Result, error) {
	return m.service.Run(ctx, jobID)
}

// EnqueueSubject creates an idle job for a subject and content index. The job
// identifier is derived deterministically from the index, so repeated enqueues
// of the same index surface as a conflict instead of duplicate jobs.
func (m *Module) EnqueueSubject(ctx context.Context, subject, indexID string) (*article.GenerationJob, error) {
	if subject == "" {
		return nil, article.ErrJobSubjectMissing
	}
	if indexID == "" {
		return nil, article.ErrJobIndexMissing
	}
	return m.jobs.Create(ctx, &article.GenerationJob{
		ID:      identity.JobUUID(indexID),
		Subject: subject,
		IndexID: indexID,
		Status:  article.JobStatusIdle,
	})
}

// Job looks up a generation job record.
func (m *Module) Job(ctx context.Context, id uuid.UUID) (*article.GenerationJob, error) {
	return m.jobs.GetByID(ctx, id)
}

// Article looks up a persisted article by slug.
func (m *Module) Article(ctx context.Context, slug string) (*article.Article, error) {
	return m.articles.GetBySlug(ctx, slug)
}

// SeedDefaultAuthor ensures an author exists for the given role, creating it
// with a deterministic identifier when missing.
func (m *Module) SeedDefaultAuthor(ctx context.Context, name, role string) (*article.Author, error) {
	if role == "" {
		role = article.DefaultAuthorRole
	}
	if existing, err := m.authors.GetByRole(ctx, role); err == nil {
		return existing, nil
	} else {
		var notFound *article.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return m.authors.Create(ctx, &article.Author{
		ID:   identity.AuthorUUID(role),
		Name: name,
		Role: role,
	})
}

// RegisterCommands wires the generation command handler into a go-command
// registry.
func (m *Module) RegisterCommands(reg generationcmd.CommandRegistry) (*generationcmd.RunArticleGenerationHandler, error) {
	return generationcmd.RegisterGenerationCommands(reg, m.service, m.jobs, logging.CommandsLogger(m.provider))
}
