package jobrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"go.uber.org/zap"
)

const jobColumns = `id, type, payload, run_at, attempts, max_attempts, status, last_error, locked_by, locked_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Enqueue stores a pending job. A job id that is already pending or running
// is left untouched and Enqueue reports false. Completed and failed ids are
// reset to pending.
func (r *Repository) Enqueue(ctx context.Context, job domain.Job) (bool, error) {
	payload, err := json.Marshal(job.Payload)
	if err != nil {
		return false, fmt.Errorf("marshal job payload: %w", err)
	}
	maxAttempts := job.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = domain.DefaultMaxAttempts
	}
	query := `
        INSERT INTO jobs (id, type, payload, run_at, max_attempts)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE
        SET type = EXCLUDED.type,
            payload = EXCLUDED.payload,
            run_at = EXCLUDED.run_at,
            max_attempts = EXCLUDED.max_attempts,
            attempts = 0,
            status = 'pending',
            last_error = '',
            locked_by = '',
            locked_at = NULL,
            updated_at = NOW()
        WHERE jobs.status IN ('completed', 'failed')
    `
	tag, err := r.db.Exec(ctx, query, job.ID, string(job.Type), payload, job.RunAt, maxAttempts)
	if err != nil {
		zap.L().Error("can't enqueue job", zap.String("jobID", job.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimDue marks up to limit due pending jobs as running for workerID and returns them.
// Rows locked by a concurrent claimer are skipped.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, workerID string, limit int) ([]domain.Job, error) {
	query := `
        UPDATE jobs
        SET status = 'running', attempts = attempts + 1, locked_by = $2, locked_at = $1, updated_at = NOW()
        WHERE id IN (
            SELECT id FROM jobs
            WHERE status = 'pending' AND run_at <= $1
            ORDER BY run_at
            LIMIT $3
            FOR UPDATE SKIP LOCKED
        )
        RETURNING ` + jobColumns
	rows, err := r.db.Query(ctx, query, now, workerID, limit)
	if err != nil {
		zap.L().Error("can't claim jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var jobType, status string
	var payload []byte
	err := row.Scan(&job.ID, &jobType, &payload, &job.RunAt, &job.Attempts, &job.MaxAttempts,
		&status, &job.LastError, &job.LockedBy, &job.LockedAt, &job.CreatedAt)
	if err != nil {
		return nil, err
	}
	job.Type = domain.JobType(jobType)
	job.Status = domain.JobStatus(status)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &job.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal payload of job %s: %w", job.ID, err)
		}
	}
	return &job, nil
}

// finish applies a terminal or retry transition to a job that workerID still
// holds. Zero rows means the lock was lost.
func (r *Repository) finish(ctx context.Context, action, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't "+action+" job", zap.Any("jobID", args[0]), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		zap.L().Warn("job lock lost before "+action, zap.Any("jobID", args[0]), zap.Any("workerID", args[1]))
		return domain.ErrJobNotOwned
	}
	return nil
}

func (r *Repository) Complete(ctx context.Context, id, workerID string) error {
	query := `
        UPDATE jobs
        SET status = 'completed', locked_by = '', locked_at = NULL, updated_at = NOW()
        WHERE id = $1 AND status = 'running' AND locked_by = $2
    `
	return r.finish(ctx, "complete", query, id, workerID)
}

// Retry puts a failed attempt back to pending at runAt.
func (r *Repository) Retry(ctx context.Context, id, workerID string, runAt time.Time, errMsg string) error {
	query := `
        UPDATE jobs
        SET status = 'pending', run_at = $3, last_error = $4, locked_by = '', locked_at = NULL, updated_at = NOW()
        WHERE id = $1 AND status = 'running' AND locked_by = $2
    `
	return r.finish(ctx, "reschedule", query, id, workerID, runAt, errMsg)
}

func (r *Repository) Fail(ctx context.Context, id, workerID string, errMsg string) error {
	query := `
        UPDATE jobs
        SET status = 'failed', last_error = $3, locked_by = '', locked_at = NULL, updated_at = NOW()
        WHERE id = $1 AND status = 'running' AND locked_by = $2
    `
	return r.finish(ctx, "fail", query, id, workerID, errMsg)
}

// RequeueStalled returns running jobs locked before the given instant to pending.
func (r *Repository) RequeueStalled(ctx context.Context, before time.Time) (int64, error) {
	query := `
        UPDATE jobs
        SET status = 'pending', locked_by = '', locked_at = NULL, updated_at = NOW()
        WHERE status = 'running' AND locked_at < $1
    `
	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		zap.L().Error("can't requeue stalled jobs", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Prune(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error) {
	query := `
        DELETE FROM jobs
        WHERE (status = 'completed' AND updated_at < $1)
           OR (status = 'failed' AND updated_at < $2)
    `
	tag, err := r.db.Exec(ctx, query, completedBefore, failedBefore)
	if err != nil {
		zap.L().Error("can't prune jobs", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
