package generationcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-scribe/article"
	"github.com/goliatone/go-scribe/internal/generation"
	"github.com/goliatone/go-scribe/internal/storage"
)

type stubRunner struct {
	result *generation.Result
	err    error
	jobIDs []uuid.UUID
}

func (s *stubRunner) Run(_ context.Context, jobID uuid.UUID) (*generation.Result, error) {
	s.jobIDs = append(s.jobIDs, jobID)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubRegistry struct {
	handlers []any
	err      error
}

func (s *stubRegistry) RegisterCommand(handler any) error {
	if s.err != nil {
		return s.err
	}
	s.handlers = append(s.handlers, handler)
	return nil
}

func TestRunArticleGenerationCommandValidate(t *testing.T) {
	if err := (RunArticleGenerationCommand{}).Validate(); err == nil {
		t.Fatalf("expected validation failure for missing job id")
	}
	if err := (RunArticleGenerationCommand{JobID: uuid.New(), Subject: "   "}).Validate(); err == nil {
		t.Fatalf("expected validation failure for blank subject override")
	}
	if err := (RunArticleGenerationCommand{JobID: uuid.New()}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestHandlerExecutesRunner(t *testing.T) {
	jobID := uuid.New()
	runner := &stubRunner{result: &generation.Result{ArticleID: uuid.New(), Slug: "x"}}
	handler := NewRunArticleGenerationHandler(runner, nil, nil)

	if err := handler.Execute(context.Background(), RunArticleGenerationCommand{JobID: jobID}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(runner.jobIDs) != 1 || runner.jobIDs[0] != jobID {
		t.Fatalf("runner received %v, want [%s]", runner.jobIDs, jobID)
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	runner := &stubRunner{}
	handler := NewRunArticleGenerationHandler(runner, nil, nil)

	if err := handler.Execute(context.Background(), RunArticleGenerationCommand{}); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(runner.jobIDs) != 0 {
		t.Fatalf("runner must not execute for invalid messages")
	}
}

func TestHandlerAppliesSubjectOverride(t *testing.T) {
	jobs := storage.NewMemoryGenerationJobRepository()
	job, err := jobs.Create(context.Background(), &article.GenerationJob{
		ID:      uuid.New(),
		Subject: "Old Subject",
		IndexID: "idx-1",
		Status:  article.JobStatusIdle,
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}

	runner := &stubRunner{result: &generation.Result{}}
	handler := NewRunArticleGenerationHandler(runner, jobs, nil)

	msg := RunArticleGenerationCommand{JobID: job.ID, Subject: "New Subject"}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	updated, err := jobs.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("job lookup: %v", err)
	}
	if updated.Subject != "New Subject" {
		t.Fatalf("subject override not applied: %q", updated.Subject)
	}
}

func TestHandlerPropagatesRunnerError(t *testing.T) {
	boom := errors.New("run failed")
	handler := NewRunArticleGenerationHandler(&stubRunner{err: boom}, nil, nil)

	err := handler.Execute(context.Background(), RunArticleGenerationCommand{JobID: uuid.New()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected runner error, got %v", err)
	}
}

func TestRegisterGenerationCommands(t *testing.T) {
	reg := &stubRegistry{}
	handler, err := RegisterGenerationCommands(reg, &stubRunner{result: &generation.Result{}}, nil, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if handler == nil || len(reg.handlers) != 1 {
		t.Fatalf("expected one registered handler, got %d", len(reg.handlers))
	}

	if _, err := RegisterGenerationCommands(reg, nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}
