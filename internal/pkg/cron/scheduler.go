package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one registered background task. Run receives the scheduler's
// context and must return once it is cancelled.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler drives the module's background jobs (currently the punch
// anomaly sweep) on plain tickers. Each job gets its own goroutine; a
// slow job delays only itself.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Registration after Start has no effect until
// the next Start.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Run:      run,
	})
	slog.Info("Scheduler: job registered", "job", name, "interval", interval)
}

// Start launches one goroutine per registered job. Every job runs once
// immediately, then on its interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("Scheduler: started", "jobs", len(s.jobs))
}

// Stop cancels all jobs and waits for their goroutines to drain.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler: stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.run(job)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(job)
		}
	}
}

func (s *Scheduler) run(job Job) {
	start := time.Now()
	if err := job.Run(s.ctx); err != nil {
		slog.Error("Scheduler: job failed", "job", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduler: job completed", "job", job.Name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time with the given
// context, bypassing the tickers.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Run(ctx); err != nil {
			slog.Error("Scheduler: job failed", "job", job.Name, "error", err)
		}
	}
}
