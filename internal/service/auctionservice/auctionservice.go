package auctionservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/events"
	"github.com/GlebRadaev/auctionhouse/internal/lifecycle"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

//go:generate mockgen -destination=mock_auctionservice.go -package=auctionservice . AuctionRepo,BidRepo,FundsRepo,UserRepo,Scheduler

type AuctionRepo interface {
	Create(ctx context.Context, item *domain.AuctionItem) (*domain.AuctionItem, error)
	FindByID(ctx context.Context, id int) (*domain.AuctionItem, error)
	LockByID(ctx context.Context, id int) (*domain.AuctionItem, error)
	UpdateBidState(ctx context.Context, id int, price decimal.Decimal, winnerID int, endsAt time.Time) error
	List(ctx context.Context, status domain.AuctionStatus, limit, offset int) ([]domain.AuctionItem, int, error)
}

type BidRepo interface {
	Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	ListByAuction(ctx context.Context, auctionID, limit int) ([]domain.Bid, error)
}

type FundsRepo interface {
	LockUser(ctx context.Context, userID int) (*domain.User, error)
	SetFunds(ctx context.Context, userID int, balance, reserved decimal.Decimal) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Scheduler interface {
	AuctionCreated(ctx context.Context, auctionID int, endsAt time.Time) error
	BidAccepted(ctx context.Context, auctionID int, endsAt time.Time, previousWinner *int, amount decimal.Decimal) error
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	RecentBids   = 20
)

var (
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrBidderNotFound      = errors.New("bidder not found")
	ErrAuctionNotActive    = errors.New("auction is not active or has expired")
	ErrBidTooLow           = errors.New("bid must be higher than current price")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidBid          = errors.New("bid amount must be a positive number with at most two decimals")
	ErrInvalidAuction      = errors.New("invalid auction")
	ErrInvalidStatus       = errors.New("invalid auction status")
	ErrInvalidDeadline     = lifecycle.ErrInvalidDeadline
)

type Service struct {
	txManager   pg.TXManager
	auctionRepo AuctionRepo
	bidRepo     BidRepo
	fundsRepo   FundsRepo
	userRepo    UserRepo
	scheduler   Scheduler
	sink        events.Sink
	clock       *wallclock.Policy
}

func New(
	txManager pg.TXManager,
	auctionRepo AuctionRepo,
	bidRepo BidRepo,
	fundsRepo FundsRepo,
	userRepo UserRepo,
	scheduler Scheduler,
	sink events.Sink,
	clock *wallclock.Policy,
) *Service {
	return &Service{
		txManager:   txManager,
		auctionRepo: auctionRepo,
		bidRepo:     bidRepo,
		fundsRepo:   fundsRepo,
		userRepo:    userRepo,
		scheduler:   scheduler,
		sink:        sink,
		clock:       clock,
	}
}

type CreateAuctionInput struct {
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	// EndsAt is wall-clock digits in the auction zone, or RFC3339.
	EndsAt string
}

type BidResult struct {
	Bid     *domain.Bid
	Auction *domain.AuctionItem
}

type AuctionDetails struct {
	Auction      *domain.AuctionItem
	CreatorEmail string
	Bids         []domain.Bid
}

type AuctionPage struct {
	Auctions   []domain.AuctionItem
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// storedDeadline keeps deadlines at millisecond precision, the precision of
// the rescheduled settlement job id. Two extensions within one millisecond
// then share both the deadline and the job.
func storedDeadline(clock *wallclock.Policy, at time.Time) time.Time {
	return clock.Store(at).Truncate(time.Millisecond)
}

func validMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(2))
}

func (s *Service) CreateAuction(ctx context.Context, creatorID int, input CreateAuctionInput) (*domain.AuctionItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidAuction)
	}
	if !validMoney(input.StartingPrice) {
		return nil, fmt.Errorf("%w: starting price must be positive with at most two decimals", ErrInvalidAuction)
	}
	deadline, err := s.clock.ParseLocal(input.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeadline, err)
	}
	if !deadline.After(s.clock.Instant()) {
		zap.L().Info("auction deadline is not in the future",
			zap.String("endsAt", input.EndsAt),
			zap.String("now", s.clock.DisplayInstant(s.clock.Instant())),
		)
		return nil, ErrInvalidDeadline
	}

	item := &domain.AuctionItem{
		Title:         title,
		Description:   input.Description,
		StartingPrice: input.StartingPrice,
		CurrentPrice:  input.StartingPrice,
		Status:        domain.AuctionActive,
		CreatorID:     creatorID,
		EndsAt:        storedDeadline(s.clock, deadline),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.auctionRepo.Create(ctx, item); err != nil {
			return err
		}
		return s.scheduler.AuctionCreated(ctx, item.ID, item.EndsAt)
	})
	if err != nil {
		zap.L().Error("can't create auction", zap.Int("creatorID", creatorID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("auction created", zap.Int("auctionID", item.ID), zap.String("endsAt", s.clock.Display(item.EndsAt)))
	return item, nil
}

// PlaceBid accepts a bid when the auction is running, the amount beats the
// current price and the bidder can cover it. The auction row is locked first,
// then the bidder and the displaced leader in ascending id order.
func (s *Service) PlaceBid(ctx context.Context, auctionID, bidderID int, amount decimal.Decimal) (*BidResult, error) {
	if !validMoney(amount) {
		return nil, ErrInvalidBid
	}

	var (
		result BidResult
		batch  events.Batch
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.LockByID(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return ErrAuctionNotFound
		}

		var previous *int
		if auction.WinnerID != nil && *auction.WinnerID != bidderID {
			id := *auction.WinnerID
			previous = &id
		}
		users, err := s.lockUsers(ctx, bidderID, previous)
		if err != nil {
			return err
		}
		bidder := users[bidderID]

		if auction.Status != domain.AuctionActive || s.clock.Passed(auction.EndsAt) {
			return ErrAuctionNotActive
		}
		if amount.LessThanOrEqual(auction.CurrentPrice) {
			return ErrBidTooLow
		}
		leading := auction.WinnerID != nil && *auction.WinnerID == bidderID
		available := bidder.Available()
		if leading {
			available = available.Add(auction.CurrentPrice)
		}
		if available.LessThan(amount) {
			return ErrInsufficientBalance
		}

		if previous != nil {
			prev := users[*previous]
			if err := s.fundsRepo.SetFunds(ctx, prev.ID, prev.Balance, prev.Reserved.Sub(auction.CurrentPrice)); err != nil {
				return err
			}
		}
		reserved := bidder.Reserved.Add(amount)
		if leading {
			reserved = reserved.Sub(auction.CurrentPrice)
		}
		if err := s.fundsRepo.SetFunds(ctx, bidder.ID, bidder.Balance, reserved); err != nil {
			return err
		}

		endsAt := storedDeadline(s.clock, s.clock.Instant().Add(lifecycle.Extension))
		if err := s.auctionRepo.UpdateBidState(ctx, auctionID, amount, bidderID, endsAt); err != nil {
			return err
		}

		bid, err := s.bidRepo.Create(ctx, &domain.Bid{
			Amount:        amount,
			BidderID:      bidderID,
			AuctionItemID: auctionID,
		})
		if err != nil {
			return err
		}

		if err := s.scheduler.BidAccepted(ctx, auctionID, endsAt, previous, amount); err != nil {
			return err
		}

		auction.CurrentPrice = amount
		auction.WinnerID = &bidderID
		auction.EndsAt = endsAt
		bid.BidderEmail = bidder.Email
		result = BidResult{Bid: bid, Auction: auction}

		batch.Add(domain.Event{
			AuctionID: auctionID,
			Type:      domain.EventNewBid,
			Payload: domain.NewBidPayload{
				Amount:     amount,
				BidderName: bidder.Email,
				Timestamp:  bid.CreatedAt,
			},
		})
		return nil
	})
	if err != nil {
		if isRejection(err) {
			zap.L().Info("bid rejected", zap.Int("auctionID", auctionID), zap.Int("bidderID", bidderID),
				zap.String("amount", amount.String()), zap.Error(err))
		} else {
			zap.L().Error("can't place bid", zap.Int("auctionID", auctionID), zap.Int("bidderID", bidderID), zap.Error(err))
		}
		return nil, err
	}

	batch.Flush(ctx, s.sink)
	zap.L().Info("bid accepted", zap.Int("auctionID", auctionID), zap.Int("bidderID", bidderID),
		zap.String("amount", amount.String()), zap.String("endsAt", s.clock.Display(result.Auction.EndsAt)))
	return &result, nil
}

func (s *Service) lockUsers(ctx context.Context, bidderID int, previous *int) (map[int]*domain.User, error) {
	ids := []int{bidderID}
	if previous != nil {
		ids = append(ids, *previous)
	}
	sort.Ints(ids)

	users := make(map[int]*domain.User, len(ids))
	for _, id := range ids {
		user, err := s.fundsRepo.LockUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			if id == bidderID {
				return nil, ErrBidderNotFound
			}
			return nil, fmt.Errorf("leading bidder %d not found", id)
		}
		users[id] = user
	}
	return users, nil
}

func isRejection(err error) bool {
	for _, target := range []error{ErrAuctionNotFound, ErrBidderNotFound, ErrAuctionNotActive, ErrBidTooLow, ErrInsufficientBalance} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *Service) GetAuctionByID(ctx context.Context, id int) (*AuctionDetails, error) {
	auction, err := s.auctionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, ErrAuctionNotFound
	}

	details := &AuctionDetails{Auction: auction}
	creator, err := s.userRepo.FindByID(ctx, auction.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator != nil {
		details.CreatorEmail = creator.Email
	}

	bids, err := s.bidRepo.ListByAuction(ctx, id, RecentBids)
	if err != nil {
		return nil, err
	}
	details.Bids = bids
	return details, nil
}

func (s *Service) ListAuctions(ctx context.Context, status string, page, limit int) (*AuctionPage, error) {
	st := domain.AuctionStatus(strings.ToUpper(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	auctions, total, err := s.auctionRepo.List(ctx, st, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to list auctions", zap.Error(err))
		return nil, err
	}

	return &AuctionPage{
		Auctions:   auctions,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
