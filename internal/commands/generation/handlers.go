package generationcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-scribe/article"
	"github.com/goliatone/go-scribe/internal/generation"
	"github.com/goliatone/go-scribe/internal/logging"
	"github.com/goliatone/go-scribe/pkg/interfaces"
)

// Runner executes a generation job end to end.
type Runner interface {
	Run(ctx context.Context, jobID uuid.UUID) (*generation.Result, error)
}

// JobStore is the slice of the job repository the handler needs to apply a
// subject override before running.
type JobStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*article.GenerationJob, error)
	Update(ctx context.Context, record *article.GenerationJob) (*article.GenerationJob, error)
}

var _ command.Commander[RunArticleGenerationCommand] = (*RunArticleGenerationHandler)(nil)

// RunArticleGenerationHandler bridges the command bus onto the generation
// service.
type RunArticleGenerationHandler struct {
	runner Runner
	jobs   JobStore
	logger interfaces.Logger
}

// NewRunArticleGenerationHandler creates a handler bound to the supplied
// runner. jobs may be nil when subject overrides are not needed.
func NewRunArticleGenerationHandler(runner Runner, jobs JobStore, logger interfaces.Logger) *RunArticleGenerationHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &RunArticleGenerationHandler{
		runner: runner,
		jobs:   jobs,
		logger: logger,
	}
}

// Execute satisfies command.Commander[RunArticleGenerationCommand].
func (h *RunArticleGenerationHandler) Execute(ctx context.Context, msg RunArticleGenerationCommand) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if msg.Subject != "" {
		if h.jobs == nil {
			return errors.New("generation command: subject override requires a job store")
		}
		job, err := h.jobs.GetByID(ctx, msg.JobID)
		if err != nil {
			return err
		}
		job.Subject = msg.Subject
		if _, err := h.jobs.Update(ctx, job); err != nil {
			return err
		}
	}

	result, err := h.runner.Run(ctx, msg.JobID)
	if err != nil {
		h.logger.Error("scribe.command.run_article.failed", "job_id", msg.JobID, "error", err)
		return err
	}

	logging.WithFields(h.logger, map[string]any{
		"job_id":     msg.JobID,
		"article_id": result.ArticleID,
		"slug":       result.Slug,
		"elapsed":    result.Elapsed.String(),
	}).Info("scribe.command.run_article.completed")
	return nil
}

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// RegisterGenerationCommands builds the generation command handler and
// registers it with the provided registry. The handler is returned so callers
// can wire additional integrations (dispatcher, cron) as needed.
func RegisterGenerationCommands(reg CommandRegistry, runner Runner, jobs JobStore, logger interfaces.Logger) (*RunArticleGenerationHandler, error) {
	if runner == nil {
		return nil, errors.New("generation command registration: runner is nil")
	}

	handler := NewRunArticleGenerationHandler(runner, jobs, logger)
	if reg != nil {
		if err := reg.RegisterCommand(handler); err != nil {
			return nil, err
		}
	}
	return handler, nil
}
