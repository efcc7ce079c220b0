// Package jobs executes the durable delayed jobs stored in Postgres.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

//go:generate mockgen -destination=mock_jobs.go -package=jobs . Queue,CleanupScheduler,Settler,Notifier

const (
	BaseBackoff       = time.Second
	VisibilityTimeout = 2 * time.Minute
	CompletedTTL      = time.Hour
	FailedTTL         = 24 * time.Hour
)

var ErrUnknownJobType = errors.New("unknown job type")

type Queue interface {
	ClaimDue(ctx context.Context, now time.Time, workerID string, limit int) ([]domain.Job, error)
	// Complete, Retry and Fail only apply while workerID still holds the job,
	// otherwise they return domain.ErrJobNotOwned.
	Complete(ctx context.Context, id, workerID string) error
	Retry(ctx context.Context, id, workerID string, runAt time.Time, errMsg string) error
	Fail(ctx context.Context, id, workerID string, errMsg string) error
	RequeueStalled(ctx context.Context, before time.Time) (int64, error)
	Prune(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error)
}

type CleanupScheduler interface {
	CleanupDue(ctx context.Context, interval time.Duration) error
}

type Handler func(ctx context.Context, job domain.Job) error

type Config struct {
	Concurrency   int
	PollInterval  time.Duration
	SweepInterval time.Duration
}

type Runner struct {
	cfg      Config
	queue    Queue
	cleanup  CleanupScheduler
	clock    *wallclock.Policy
	handlers map[domain.JobType]Handler
	workerID string
	pool     WorkerPoolI
}

func NewRunner(cfg Config, queue Queue, cleanup CleanupScheduler, clock *wallclock.Policy, handlers map[domain.JobType]Handler) *Runner {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 5
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	return &Runner{
		cfg:      cfg,
		queue:    queue,
		cleanup:  cleanup,
		clock:    clock,
		handlers: handlers,
		workerID: uuid.NewString(),
		pool:     NewWorkerPool(cfg.Concurrency),
	}
}

// Backoff is the delay before retrying after the given failed attempt.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return BaseBackoff << (attempt - 1)
}

// Run polls for due jobs until ctx is canceled, then waits for the jobs it
// already started. Started jobs run on a context that outlives ctx.
func (r *Runner) Run(ctx context.Context) error {
	zap.L().Info("Job runner started", zap.String("workerID", r.workerID), zap.Int("concurrency", r.cfg.Concurrency))
	defer r.pool.Close()

	poll := time.NewTicker(r.cfg.PollInterval)
	defer poll.Stop()
	sweep := time.NewTicker(r.cfg.SweepInterval)
	defer sweep.Stop()

	r.maintain(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping job runner")
			return nil
		case <-sweep.C:
			r.maintain(ctx)
		case <-poll.C:
			if _, err := r.Poll(ctx); err != nil && !errors.Is(err, context.Canceled) {
				zap.L().Error("Failed to poll jobs", zap.Error(err))
			}
		}
	}
}

// maintain enqueues the recovery sweep for this interval and tidies the queue.
func (r *Runner) maintain(ctx context.Context) {
	now := r.clock.Instant()
	if err := r.cleanup.CleanupDue(ctx, r.cfg.SweepInterval); err != nil {
		zap.L().Error("Failed to schedule cleanup", zap.Error(err))
	}
	if n, err := r.queue.RequeueStalled(ctx, now.Add(-VisibilityTimeout)); err != nil {
		zap.L().Error("Failed to requeue stalled jobs", zap.Error(err))
	} else if n > 0 {
		zap.L().Warn("Requeued stalled jobs", zap.Int64("count", n))
	}
	if _, err := r.queue.Prune(ctx, now.Add(-CompletedTTL), now.Add(-FailedTTL)); err != nil {
		zap.L().Error("Failed to prune jobs", zap.Error(err))
	}
}

// Poll claims one batch of due jobs and runs it to completion.
func (r *Runner) Poll(ctx context.Context) (int, error) {
	jobs, err := r.queue.ClaimDue(ctx, r.clock.Instant(), r.workerID, r.cfg.Concurrency)
	if err != nil {
		return 0, err
	}

	detached := context.WithoutCancel(ctx)
	var (
		g  errgroup.Group
		wg sync.WaitGroup
	)
	for _, job := range jobs {
		job := job
		wg.Add(1)
		g.Go(func() error {
			err := r.pool.AddTask(ctx, func() error {
				defer wg.Done()
				return r.execute(detached, job)
			})
			if err != nil {
				wg.Done()
				return fmt.Errorf("dispatch job %s: %w", job.ID, err)
			}
			return nil
		})
	}

	err = g.Wait()
	wg.Wait()
	return len(jobs), err
}

func (r *Runner) execute(ctx context.Context, job domain.Job) error {
	err := r.finish(ctx, job)
	if errors.Is(err, domain.ErrJobNotOwned) {
		// Another worker reclaimed the job after it was requeued as stalled.
		zap.L().Warn("Job lock lost, result discarded", zap.String("jobID", job.ID), zap.String("workerID", r.workerID))
		return nil
	}
	return err
}

func (r *Runner) finish(ctx context.Context, job domain.Job) error {
	handler, ok := r.handlers[job.Type]
	if !ok {
		zap.L().Error("No handler for job", zap.String("jobID", job.ID), zap.String("type", string(job.Type)))
		return r.queue.Fail(ctx, job.ID, r.workerID, ErrUnknownJobType.Error())
	}

	err := handler(ctx, job)
	if err == nil {
		return r.queue.Complete(ctx, job.ID, r.workerID)
	}

	if job.Attempts >= job.MaxAttempts {
		zap.L().Error("Job failed permanently",
			zap.String("jobID", job.ID), zap.String("type", string(job.Type)),
			zap.Int("attempts", job.Attempts), zap.Error(err))
		return r.queue.Fail(ctx, job.ID, r.workerID, err.Error())
	}

	delay := Backoff(job.Attempts)
	zap.L().Warn("Job failed, retrying",
		zap.String("jobID", job.ID), zap.String("type", string(job.Type)),
		zap.Int("attempt", job.Attempts), zap.Duration("retryAfter", delay), zap.Error(err))
	return r.queue.Retry(ctx, job.ID, r.workerID, r.clock.Instant().Add(delay), err.Error())
}
