package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type JobType string

const (
	JobAuctionSettlement  JobType = "AUCTION_SETTLEMENT"
	JobAuctionReminder    JobType = "AUCTION_REMINDER"
	JobOutbidNotification JobType = "OUTBID_NOTIFICATION"
	JobSettlementCleanup  JobType = "SETTLEMENT_CLEANUP"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

const DefaultMaxAttempts = 3

// ErrJobNotOwned is returned when a job is finished by a worker that no
// longer holds its lock, usually after it was requeued as stalled.
var ErrJobNotOwned = errors.New("job is not locked by this worker")

// JobPayload is stored as jsonb and handed to the job handler.
type JobPayload struct {
	Type      JobType          `json:"type"`
	AuctionID int              `json:"auctionId,omitempty"`
	BidderID  int              `json:"bidderId,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
}

type Job struct {
	ID          string     `db:"id"`
	Type        JobType    `db:"type"`
	Payload     JobPayload `db:"payload"`
	RunAt       time.Time  `db:"run_at"`
	Attempts    int        `db:"attempts"`
	MaxAttempts int        `db:"max_attempts"`
	Status      JobStatus  `db:"status"`
	LastError   string     `db:"last_error"`
	LockedBy    string     `db:"locked_by"`
	LockedAt    *time.Time `db:"locked_at"`
	CreatedAt   time.Time  `db:"created_at"`
}
