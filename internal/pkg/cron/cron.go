package cron

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a named background task run at a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on their intervals until the context is
// cancelled. Job failures are logged, never fatal; a job still running when
// its next tick arrives is skipped for that tick.
type Scheduler struct {
	log  *zap.Logger
	mu   sync.Mutex
	jobs []Job

	running map[string]bool
}

func New(log *zap.Logger) *Scheduler {
	return &Scheduler{
		log:     log,
		running: make(map[string]bool),
	}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	for _, job := range jobs {
		go s.runLoop(ctx, job)
	}
}

// RunNow triggers a single job execution outside its schedule.
func (s *Scheduler) RunNow(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range s.jobs {
		if job.Name == name {
			go s.execute(ctx, job)
			return
		}
	}
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, job)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	s.mu.Lock()
	if s.running[job.Name] {
		s.mu.Unlock()
		return
	}
	s.running[job.Name] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running[job.Name] = false
		s.mu.Unlock()
	}()

	start := time.Now()
	if err := job.Fn(ctx); err != nil {
		s.log.Warn("cron job failed",
			zap.String("job", job.Name),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	s.log.Debug("cron job done",
		zap.String("job", job.Name),
		zap.Duration("took", time.Since(start)),
	)
}
