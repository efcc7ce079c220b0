package jobs

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
)

type Settler interface {
	Settle(ctx context.Context, auctionID int) (settlementservice.Outcome, error)
	Sweep(ctx context.Context) (int, error)
}

type Notifier interface {
	Remind(ctx context.Context, auctionID int) error
	NotifyOutbid(ctx context.Context, auctionID, userID int, amount decimal.Decimal) error
}

// Handlers maps every job type to the service that executes it.
func Handlers(settler Settler, notifier Notifier) map[domain.JobType]Handler {
	return map[domain.JobType]Handler{
		domain.JobAuctionSettlement: func(ctx context.Context, job domain.Job) error {
			_, err := settler.Settle(ctx, job.Payload.AuctionID)
			return err
		},
		domain.JobSettlementCleanup: func(ctx context.Context, _ domain.Job) error {
			_, err := settler.Sweep(ctx)
			return err
		},
		domain.JobAuctionReminder: func(ctx context.Context, job domain.Job) error {
			return notifier.Remind(ctx, job.Payload.AuctionID)
		},
		domain.JobOutbidNotification: func(ctx context.Context, job domain.Job) error {
			if job.Payload.Amount == nil {
				return fmt.Errorf("job %s: outbid payload without amount", job.ID)
			}
			return notifier.NotifyOutbid(ctx, job.Payload.AuctionID, job.Payload.BidderID, *job.Payload.Amount)
		},
	}
}
