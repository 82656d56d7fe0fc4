package article

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrJobIDRequired     = errors.New("article: job id required")
	ErrJobSubjectMissing = errors.New("article: job subject is required")
	ErrJobIndexMissing   = errors.New("article: job index id is required")
	ErrJobNotFound       = errors.New("article: job not found")
	ErrJobAlreadyRunning = errors.New("article: job already claimed by another run")

	ErrIndexingTimeout   = errors.New("article: content index wait timed out")
	ErrGenerationFailed  = errors.New("article: generation provider returned no usable content")
	ErrNoAuthorAvailable = errors.New("article: no default author available")
	ErrPersistenceFailed = errors.New("article: article persistence failed")
)

// NotFoundError reports a missing record lookup against the store.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "article: record not found"
	}
	return fmt.Sprintf("article: %s not found: %s", e.Resource, e.Key)
}

// IndexingTimeoutError captures an exhausted readiness wait.
type IndexingTimeoutError struct {
	IndexID  string
	Attempts int
	Interval time.Duration
}

func (e *IndexingTimeoutError) Error() string {
	if e == nil {
		return ErrIndexingTimeout.Error()
	}
	return fmt.Sprintf("%s: index=%s attempts=%d interval=%s",
		ErrIndexingTimeout.Error(), e.IndexID, e.Attempts, e.Interval)
}

func (e *IndexingTimeoutError) Unwrap() error {
	return ErrIndexingTimeout
}

// GenerationFailureError captures a provider run that finished with a
// non-success status or empty output.
type GenerationFailureError struct {
	Status string
}

func (e *GenerationFailureError) Error() string {
	if e == nil {
		return ErrGenerationFailed.Error()
	}
	status := strings.TrimSpace(e.Status)
	if status == "" {
		return ErrGenerationFailed.Error()
	}
	return fmt.Sprintf("%s: status=%s", ErrGenerationFailed.Error(), status)
}

func (e *GenerationFailureError) Unwrap() error {
	return ErrGenerationFailed
}

// PersistenceError wraps a failed store write with the entity it targeted.
type PersistenceError struct {
	Resource string
	Cause    error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ErrPersistenceFailed.Error()
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrPersistenceFailed.Error(), e.Resource)
	}
	return fmt.Sprintf("%s: %s: %v", ErrPersistenceFailed.Error(), e.Resource, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailed
}
