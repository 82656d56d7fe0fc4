package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-scribe/article"
	"github.com/goliatone/go-scribe/internal/logging"
	"github.com/goliatone/go-scribe/internal/markdown"
	"github.com/goliatone/go-scribe/internal/validation"
	"github.com/goliatone/go-scribe/pkg/interfaces"
	"github.com/goliatone/go-scribe/richtext"
)

// JobRepository is the store surface the orchestrator needs for job records.
// Claim must flip idle→generating atomically so concurrent runs for the same
// identifier cannot both proceed.
type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*article.GenerationJob, error)
	Update(ctx context.Context, record *article.GenerationJob) (*article.GenerationJob, error)
	Claim(ctx context.Context, id uuid.UUID) error
}

// ArticleRepository persists the produced article.
type ArticleRepository interface {
	Create(ctx context.Context, record *article.Article) (*article.Article, error)
}

// AuthorRepository resolves the default byline.
type AuthorRepository interface {
	GetByRole(ctx context.Context, role string) (*article.Author, error)
}

// Result is the terse summary returned to the immediate caller; everything
// else is observable through the job record in the store.
type Result struct {
	ArticleID uuid.UUID
	Title     string
	Slug      string
	Elapsed   time.Duration
}

// RunError pairs the failure that ended a run with a secondary failure that
// occurred while recording it on the job record. The original cause stays
// reachable through Unwrap; the recording failure is exposed instead of
// silently discarded.
type RunError struct {
	Cause  error
	Record error
}

func (e *RunError) Error() string {
	if e == nil {
		return "generation: run failed"
	}
	if e.Record == nil {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%v (recording job error failed: %v)", e.Cause, e.Record)
}

func (e *RunError) Unwrap() error {
	return e.Cause
}

// Service drives one generation job through its lifecycle: claim the job,
// wait for the content index, call the provider, parse the output into a
// block tree plus excerpt, and persist the article attributed to the default
// author. Exactly one terminal status is written per run.
type Service struct {
	jobs     JobRepository
	articles ArticleRepository
	authors  AuthorRepository
	poller   *Poller
	provider interfaces.GenerationProvider
	renderer *markdown.Renderer

	logger        interfaces.Logger
	now           func() time.Time
	excerptLength int
	authorRole    string
	instructions  string
}

// Option customises a Service.
type Option func(*Service)

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithExcerptLength(length int) Option {
	return func(s *Service) {
		if length > 0 {
			s.excerptLength = length
		}
	}
}

func WithAuthorRole(role string) Option {
	return func(s *Service) {
		if role != "" {
			s.authorRole = role
		}
	}
}

// WithInstructions overrides the guidance text forwarded to the provider.
func WithInstructions(instructions string) Option {
	return func(s *Service) {
		s.instructions = instructions
	}
}

const defaultInstructions = "Write a well-structured markdown summary of the indexed material. " +
	"Open with a single level-1 heading naming the piece, use level-2 sections, " +
	"short paragraphs, and lists where they help."

func NewService(
	jobs JobRepository,
	articles ArticleRepository,
	authors AuthorRepository,
	poller *Poller,
	provider interfaces.GenerationProvider,
	opts ...Option,
) *Service {
	s := &Service{
		jobs:          jobs,
		articles:      articles,
		authors:       authors,
		poller:        poller,
		provider:      provider,
		renderer:      markdown.NewRenderer(),
		logger:        logging.NoOp(),
		now:           time.Now,
		excerptLength: richtext.DefaultExcerptLength,
		authorRole:    article.DefaultAuthorRole,
		instructions:  defaultInstructions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the full pipeline for one job. The job must exist and be
// idle; a second Run for the same identifier fails with
// ErrJobAlreadyRunning without touching the record. Every failure past the
// claim is recorded on the job as its error status before being returned.
func (s *Service) Run(ctx context.Context, jobID uuid.UUID) (*Result, error) {
	start := s.now()

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Subject == "" {
		return nil, article.ErrJobSubjectMissing
	}
	if job.IndexID == "" {
		return nil, article.ErrJobIndexMissing
	}

	if err := s.jobs.Claim(ctx, jobID); err != nil {
		return nil, err
	}
	job.Status = article.JobStatusGenerating
	job.Error = nil
	s.setProgress(ctx, job, "starting")

	logger := logging.WithJobContext(s.logger, job.ID.String(), job.IndexID)
	logger.Info("generation run started", "subject", job.Subject)

	if err := s.poller.Wait(ctx, job.IndexID, func(remaining int) {
		s.setProgress(ctx, job, fmt.Sprintf("indexing: %d documents remaining", remaining))
	}); err != nil {
		return nil, s.fail(ctx, job, err)
	}

	s.setProgress(ctx, job, "calling provider")
	generated, err := s.provider.Generate(ctx, interfaces.GenerationRequest{
		Subject:      job.Subject,
		IndexID:      job.IndexID,
		Instructions: s.instructions,
	})
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}
	if !generated.Succeeded() {
		return nil, s.fail(ctx, job, &article.GenerationFailureError{Status: generated.Status})
	}

	s.setProgress(ctx, job, "parsing")
	matter, body := splitFrontMatter(generated.Text)
	title := matter.Title
	if title == "" {
		title, body = extractTitle(body, job.Subject)
	}

	doc := richtext.Parse(body)
	if err := validation.ValidateDocument(doc); err != nil {
		return nil, s.fail(ctx, job, &article.PersistenceError{Resource: "document", Cause: err})
	}
	excerpt := richtext.Excerpt(body, s.excerptLength)
	if matter.Summary != "" {
		excerpt = matter.Summary
	}

	html, err := s.renderer.Render([]byte(body))
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}

	author, err := s.authors.GetByRole(ctx, s.authorRole)
	if err != nil {
		var notFound *article.NotFoundError
		if errors.As(err, &notFound) {
			err = article.ErrNoAuthorAvailable
		}
		return nil, s.fail(ctx, job, err)
	}

	slug := article.DeriveSlug(title, s.now())
	created, err := s.articles.Create(ctx, &article.Article{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Title:    title,
		Slug:     slug,
		Excerpt:  optional(excerpt),
		Body:     body,
		BodyHTML: string(html),
		Document: doc,
		Tags:     matter.Tags,
	})
	if err != nil {
		return nil, s.fail(ctx, job, err)
	}

	job.Status = article.JobStatusCompleted
	job.ArticleID = &created.ID
	job.Progress = optional("done")
	if _, err := s.jobs.Update(ctx, job); err != nil {
		// The article exists; the stale job record is the lesser problem,
		// but the caller still needs to know the final write was lost.
		logger.Error("completed status write failed", "error", err)
		return nil, err
	}

	elapsed := s.now().Sub(start)
	logger.Info("generation run completed", "slug", created.Slug, "elapsed", elapsed)

	return &Result{
		ArticleID: created.ID,
		Title:     created.Title,
		Slug:      created.Slug,
		Elapsed:   elapsed,
	}, nil
}

// setProgress writes a progress annotation to the job record. Progress is
// informative only, so a failed write is logged and dropped rather than
// ending the run.
func (s *Service) setProgress(ctx context.Context, job *article.GenerationJob, msg string) {
	job.Progress = &msg
	if _, err := s.jobs.Update(ctx, job); err != nil {
		s.logger.Warn("progress update dropped", "job_id", job.ID.String(), "error", err)
	}
}

// fail writes the terminal error status onto the job. A secondary failure
// while recording is captured in the returned RunError instead of being
// re-raised or swallowed.
func (s *Service) fail(ctx context.Context, job *article.GenerationJob, cause error) error {
	job.Status = article.JobStatusError
	msg := cause.Error()
	job.Error = &msg
	if _, recErr := s.jobs.Update(ctx, job); recErr != nil {
		s.logger.Error("job error status write failed",
			"job_id", job.ID.String(), "cause", cause, "error", recErr)
		return &RunError{Cause: cause, Record: recErr}
	}
	return cause
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
