package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/events"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

//go:generate mockgen -destination=mock_settlementservice.go -package=settlementservice . AuctionRepo,FundsRepo,Scheduler

type AuctionRepo interface {
	LockByID(ctx context.Context, id int) (*domain.AuctionItem, error)
	UpdateStatus(ctx context.Context, id int, status domain.AuctionStatus) error
	FindOverdueIDs(ctx context.Context, now time.Time) ([]int, error)
}

type FundsRepo interface {
	LockUser(ctx context.Context, userID int) (*domain.User, error)
	SetFunds(ctx context.Context, userID int, balance, reserved decimal.Decimal) error
}

type Scheduler interface {
	SettlementMissed(ctx context.Context, auctionID int) error
}

// Outcome is what a settlement attempt did. Only Sold and Expired change state.
type Outcome string

const (
	Sold           Outcome = "sold"
	Expired        Outcome = "expired"
	AlreadySettled Outcome = "already_settled"
	Extended       Outcome = "extended"
	NotFound       Outcome = "not_found"
)

var ErrInsufficientFunds = errors.New("winner balance does not cover the final price")

type Service struct {
	txManager   pg.TXManager
	auctionRepo AuctionRepo
	fundsRepo   FundsRepo
	scheduler   Scheduler
	sink        events.Sink
	clock       *wallclock.Policy
}

func New(txManager pg.TXManager, auctionRepo AuctionRepo, fundsRepo FundsRepo, scheduler Scheduler, sink events.Sink, clock *wallclock.Policy) *Service {
	return &Service{
		txManager:   txManager,
		auctionRepo: auctionRepo,
		fundsRepo:   fundsRepo,
		scheduler:   scheduler,
		sink:        sink,
		clock:       clock,
	}
}

// Settle finalizes an auction whose deadline has passed. It is safe to call
// any number of times: only the first call on an ACTIVE, overdue auction
// moves money and changes its status.
func (s *Service) Settle(ctx context.Context, auctionID int) (Outcome, error) {
	var (
		outcome Outcome
		batch   events.Batch
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.LockByID(ctx, auctionID)
		if err != nil {
			return err
		}
		switch {
		case auction == nil:
			outcome = NotFound
			return nil
		case auction.Status != domain.AuctionActive:
			outcome = AlreadySettled
			return nil
		case !s.clock.Passed(auction.EndsAt):
			outcome = Extended
			return nil
		}

		if auction.WinnerID == nil {
			if err := s.auctionRepo.UpdateStatus(ctx, auctionID, domain.AuctionExpired); err != nil {
				return err
			}
			outcome = Expired
			batch.Add(domain.Event{
				AuctionID: auctionID,
				Type:      domain.EventAuctionExpired,
				Payload:   domain.AuctionExpiredPayload{AuctionID: auctionID},
			})
			return nil
		}

		winner, err := s.transfer(ctx, auction)
		if err != nil {
			return err
		}
		if err := s.auctionRepo.UpdateStatus(ctx, auctionID, domain.AuctionSold); err != nil {
			return err
		}
		outcome = Sold
		batch.Add(domain.Event{
			AuctionID: auctionID,
			Type:      domain.EventAuctionSold,
			Payload: domain.AuctionSoldPayload{
				AuctionID:  auctionID,
				WinnerName: winner.Email,
				FinalPrice: auction.CurrentPrice,
			},
		})
		return nil
	})
	if err != nil {
		zap.L().Error("settlement failed", zap.Int("auctionID", auctionID), zap.Error(err))
		return "", err
	}

	batch.Flush(ctx, s.sink)
	switch outcome {
	case NotFound:
		zap.L().Warn("auction not found during settlement", zap.Int("auctionID", auctionID))
	default:
		zap.L().Info("settlement finished", zap.Int("auctionID", auctionID), zap.String("outcome", string(outcome)))
	}
	return outcome, nil
}

// transfer moves the final price from the winner to the creator and releases
// the winner's reservation. Users are locked in ascending id order.
func (s *Service) transfer(ctx context.Context, auction *domain.AuctionItem) (*domain.User, error) {
	winnerID, creatorID := *auction.WinnerID, auction.CreatorID
	ids := []int{winnerID}
	if creatorID != winnerID {
		ids = append(ids, creatorID)
	}
	sort.Ints(ids)

	users := make(map[int]*domain.User, len(ids))
	for _, id := range ids {
		user, err := s.fundsRepo.LockUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("user %d of auction %d not found", id, auction.ID)
		}
		users[id] = user
	}

	price := auction.CurrentPrice
	winner := users[winnerID]
	balance := winner.Balance.Sub(price)
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: auction %d, user %d", ErrInsufficientFunds, auction.ID, winnerID)
	}
	reserved := winner.Reserved.Sub(price)
	if reserved.IsNegative() {
		zap.L().Warn("winner reservation below final price",
			zap.Int("auctionID", auction.ID), zap.Int("userID", winnerID), zap.String("reserved", winner.Reserved.String()))
		reserved = decimal.Zero
	}

	if creatorID == winnerID {
		return winner, s.fundsRepo.SetFunds(ctx, winnerID, winner.Balance, reserved)
	}
	if err := s.fundsRepo.SetFunds(ctx, winnerID, balance, reserved); err != nil {
		return nil, err
	}
	creator := users[creatorID]
	if err := s.fundsRepo.SetFunds(ctx, creatorID, creator.Balance.Add(price), creator.Reserved); err != nil {
		return nil, err
	}
	return winner, nil
}

// Sweep re-drives settlement for every ACTIVE auction already past its
// deadline and returns how many were handed to the scheduler.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	ids, err := s.auctionRepo.FindOverdueIDs(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("find overdue auctions: %w", err)
	}

	var (
		count int
		errs  []error
	)
	for _, id := range ids {
		if err := s.scheduler.SettlementMissed(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("auction %d: %w", id, err))
			continue
		}
		count++
	}
	if len(ids) > 0 {
		zap.L().Info("recovery sweep", zap.Int("overdue", len(ids)), zap.Int("enqueued", count))
	}
	return count, errors.Join(errs...)
}
