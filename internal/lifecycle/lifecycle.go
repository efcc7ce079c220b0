// Package lifecycle ties an auction's deadline to the delayed jobs that end it.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

//go:generate mockgen -destination=mock_lifecycle.go -package=lifecycle . Enqueuer

const (
	// ReminderLead is how long before the deadline AUCTION_ENDING_SOON fires.
	ReminderLead = 5 * time.Minute
	// Extension is the deadline set by every accepted bid, counted from the bid.
	Extension = 15 * time.Second
)

var ErrInvalidDeadline = errors.New("deadline must be in the future")

type Enqueuer interface {
	Enqueue(ctx context.Context, job domain.Job) (bool, error)
}

type Scheduler struct {
	queue Enqueuer
	clock *wallclock.Policy
}

func New(queue Enqueuer, clock *wallclock.Policy) *Scheduler {
	return &Scheduler{
		queue: queue,
		clock: clock,
	}
}

func SettlementJobID(auctionID int) string {
	return "settlement_" + strconv.Itoa(auctionID)
}

func ReminderJobID(auctionID int) string {
	return "reminder_" + strconv.Itoa(auctionID)
}

// RescheduledSettlementJobID is unique per deadline, so each extension gets its own job.
func RescheduledSettlementJobID(auctionID int, endsAt time.Time) string {
	return fmt.Sprintf("settlement_%d_%d", auctionID, endsAt.UnixMilli())
}

func RecoveryJobID(auctionID int) string {
	return "settlement_cleanup_" + strconv.Itoa(auctionID)
}

func CleanupJobID(at time.Time, interval time.Duration) string {
	slot := at.Unix()
	if secs := int64(interval / time.Second); secs > 0 {
		slot /= secs
	}
	return "cleanup_" + strconv.FormatInt(slot, 10)
}

// enqueue schedules a job at runAt, a real instant.
func (s *Scheduler) enqueue(ctx context.Context, id string, payload domain.JobPayload, runAt time.Time) error {
	job := domain.Job{
		ID:          id,
		Type:        payload.Type,
		Payload:     payload,
		RunAt:       runAt,
		MaxAttempts: domain.DefaultMaxAttempts,
	}
	inserted, err := s.queue.Enqueue(ctx, job)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", id, err)
	}
	if !inserted {
		zap.L().Debug("job already scheduled", zap.String("jobID", id))
	}
	return nil
}

// AuctionCreated schedules settlement at the deadline and, when the auction
// runs longer than ReminderLead, a reminder ReminderLead before it.
// endsAt is in storage representation.
func (s *Scheduler) AuctionCreated(ctx context.Context, auctionID int, endsAt time.Time) error {
	if s.clock.Passed(endsAt) {
		return ErrInvalidDeadline
	}
	deadline := s.clock.InstantOf(endsAt)

	err := s.enqueue(ctx, SettlementJobID(auctionID), domain.JobPayload{
		Type:      domain.JobAuctionSettlement,
		AuctionID: auctionID,
	}, deadline)
	if err != nil {
		return err
	}

	if s.clock.Until(endsAt) > ReminderLead {
		err = s.enqueue(ctx, ReminderJobID(auctionID), domain.JobPayload{
			Type:      domain.JobAuctionReminder,
			AuctionID: auctionID,
		}, deadline.Add(-ReminderLead))
		if err != nil {
			return err
		}
	}
	return nil
}

// BidAccepted schedules settlement for the extended deadline and, when a
// previous leader was displaced, the outbid notice for them. The superseded
// settlement job is left in place and settles nothing when it fires early.
func (s *Scheduler) BidAccepted(ctx context.Context, auctionID int, endsAt time.Time, previousWinner *int, amount decimal.Decimal) error {
	if previousWinner != nil {
		err := s.enqueue(ctx, uuid.NewString(), domain.JobPayload{
			Type:      domain.JobOutbidNotification,
			AuctionID: auctionID,
			BidderID:  *previousWinner,
			Amount:    &amount,
		}, s.clock.Instant())
		if err != nil {
			return err
		}
	}

	// run_at is the deadline itself, so the job can never fire before it.
	deadline := s.clock.InstantOf(endsAt)
	return s.enqueue(ctx, RescheduledSettlementJobID(auctionID, deadline), domain.JobPayload{
		Type:      domain.JobAuctionSettlement,
		AuctionID: auctionID,
	}, deadline)
}

// SettlementMissed re-drives settlement for an auction found past its deadline.
func (s *Scheduler) SettlementMissed(ctx context.Context, auctionID int) error {
	return s.enqueue(ctx, RecoveryJobID(auctionID), domain.JobPayload{
		Type:      domain.JobAuctionSettlement,
		AuctionID: auctionID,
	}, s.clock.Instant())
}

// CleanupDue enqueues the recovery sweep for the current interval slot.
func (s *Scheduler) CleanupDue(ctx context.Context, interval time.Duration) error {
	now := s.clock.Instant()
	return s.enqueue(ctx, CleanupJobID(now, interval), domain.JobPayload{
		Type: domain.JobSettlementCleanup,
	}, now)
}
