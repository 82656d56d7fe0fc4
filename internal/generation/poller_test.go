package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-scribe/article"
	"github.com/goliatone/go-scribe/pkg/interfaces"
)

type scriptedIndex struct {
	counts []int
	calls  int
	err    error
}

func (s *scriptedIndex) Status(context.Context, string) (interfaces.IndexStatus, error) {
	if s.err != nil {
		return interfaces.IndexStatus{}, s.err
	}
	count := 0
	if s.calls < len(s.counts) {
		count = s.counts[s.calls]
	}
	s.calls++
	return interfaces.IndexStatus{InProgress: count}, nil
}

func noSleep(context.Context, time.Duration) error { return nil }

func TestPollerSucceedsWhenCountReachesZero(t *testing.T) {
	index := &scriptedIndex{counts: []int{3, 1, 0}}
	poller := NewPoller(index, withSleep(noSleep))

	var progress []int
	err := poller.Wait(context.Background(), "idx-1", func(remaining int) {
		progress = append(progress, remaining)
	})
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if index.calls != 3 {
		t.Fatalf("expected 3 polls, got %d", index.calls)
	}
	if len(progress) != 2 || progress[0] != 3 || progress[1] != 1 {
		t.Fatalf("unexpected progress reports: %v", progress)
	}
}

func TestPollerTimesOutAfterMaxAttempts(t *testing.T) {
	index := &scriptedIndex{counts: []int{5, 5, 5, 5, 5}}
	poller := NewPoller(index, withSleep(noSleep), WithPollAttempts(3))

	err := poller.Wait(context.Background(), "idx-1", nil)
	if !errors.Is(err, article.ErrIndexingTimeout) {
		t.Fatalf("expected indexing timeout, got %v", err)
	}
	if index.calls != 3 {
		t.Fatalf("expected 3 polls, got %d", index.calls)
	}

	var timeout *article.IndexingTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected IndexingTimeoutError, got %T", err)
	}
	if timeout.IndexID != "idx-1" || timeout.Attempts != 3 {
		t.Fatalf("unexpected timeout details: %+v", timeout)
	}
}

func TestPollerPropagatesIndexErrors(t *testing.T) {
	boom := errors.New("index unavailable")
	poller := NewPoller(&scriptedIndex{err: boom}, withSleep(noSleep))

	if err := poller.Wait(context.Background(), "idx-1", nil); !errors.Is(err, boom) {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestPollerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	index := &scriptedIndex{counts: []int{2, 2}}
	poller := NewPoller(index)

	if err := poller.Wait(ctx, "idx-1", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
