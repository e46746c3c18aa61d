package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartWithoutReportFunction(t *testing.T) {
	s := New("0 9 * * 1", time.UTC)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.IsRunning() {
		t.Fatalf("scheduler without a report function must not register jobs")
	}
	s.Stop()
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := New("not a cron", time.UTC)
	s.SetReportFunction(func(ctx context.Context) error { return nil })
	if err := s.Start(); err == nil {
		t.Fatalf("expected error for bad spec")
	}
	s.Stop()
}

func TestRunInvokesReportFunction(t *testing.T) {
	s := New("0 9 * * 1", time.UTC)
	calls := 0
	s.SetReportFunction(func(ctx context.Context) error {
		calls++
		if ctx == nil {
			t.Fatalf("nil context")
		}
		return errors.New("logged, not returned")
	})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.IsRunning() {
		t.Fatalf("job not registered")
	}
	s.run()
	if calls != 1 {
		t.Fatalf("want 1 call, got %d", calls)
	}
	s.Stop()
}
