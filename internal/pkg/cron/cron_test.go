package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSchedulerRunsJobOnInterval(t *testing.T) {
	sched := New(zap.NewNop())

	var runs atomic.Int32
	sched.Register(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}

func TestRunNowTriggersOnce(t *testing.T) {
	sched := New(zap.NewNop())

	done := make(chan struct{})
	sched.Register(Job{
		Name:     "once",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})

	sched.RunNow(context.Background(), "once")
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestFailingJobKeepsScheduler(t *testing.T) {
	sched := New(zap.NewNop())

	var runs atomic.Int32
	sched.Register(Job{
		Name:     "flaky",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return context.DeadlineExceeded
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
}
