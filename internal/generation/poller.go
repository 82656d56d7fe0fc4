package generation

import (
	"context"
	"time"

	"github.com/goliatone/go-scribe/article"
	"github.com/goliatone/go-scribe/internal/logging"
	"github.com/goliatone/go-scribe/pkg/interfaces"
)

const (
	// DefaultPollAttempts bounds the readiness wait.
	DefaultPollAttempts = 120
	// DefaultPollInterval is the fixed pause between attempts. The wait is
	// deliberately a fixed-interval loop: no backoff, no jitter.
	DefaultPollInterval = time.Second
)

// Poller blocks until the external content index reports zero in-progress
// documents for an index, or the attempt budget runs out.
type Poller struct {
	index    interfaces.ContentIndex
	attempts int
	interval time.Duration
	logger   interfaces.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// PollerOption customises a Poller.
type PollerOption func(*Poller)

func WithPollAttempts(attempts int) PollerOption {
	return func(p *Poller) {
		if attempts > 0 {
			p.attempts = attempts
		}
	}
}

func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

func WithPollerLogger(logger interfaces.Logger) PollerOption {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// withSleep replaces the inter-attempt pause; tests use it to avoid real
// waits.
func withSleep(sleep func(ctx context.Context, d time.Duration) error) PollerOption {
	return func(p *Poller) {
		if sleep != nil {
			p.sleep = sleep
		}
	}
}

func NewPoller(index interfaces.ContentIndex, opts ...PollerOption) *Poller {
	p := &Poller{
		index:    index,
		attempts: DefaultPollAttempts,
		interval: DefaultPollInterval,
		logger:   logging.NoOp(),
		sleep:    sleepWithContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Wait polls the index status until no documents remain in progress. After
// each unsuccessful attempt the remaining count is reported through
// onProgress and the poller pauses for its fixed interval. Exhausting the
// attempt budget yields an IndexingTimeoutError; a cancelled context ends
// the wait early with ctx.Err().
func (p *Poller) Wait(ctx context.Context, indexID string, onProgress func(remaining int)) error {
	for attempt := 1; attempt <= p.attempts; attempt++ {
		status, err := p.index.Status(ctx, indexID)
		if err != nil {
			return err
		}
		if status.InProgress == 0 {
			p.logger.Debug("content index ready", "index_id", indexID, "attempt", attempt)
			return nil
		}
		if onProgress != nil {
			onProgress(status.InProgress)
		}
		if attempt == p.attempts {
			break
		}
		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
	}
	return &article.IndexingTimeoutError{
		IndexID:  indexID,
		Attempts: p.attempts,
		Interval: p.interval,
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
