package notifyservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/events"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

//go:generate mockgen -destination=mock_notifyservice.go -package=notifyservice . AuctionRepo,UserRepo

type AuctionRepo interface {
	FindByID(ctx context.Context, id int) (*domain.AuctionItem, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	auctionRepo AuctionRepo
	userRepo    UserRepo
	sink        events.Sink
	clock       *wallclock.Policy
}

func New(auctionRepo AuctionRepo, userRepo UserRepo, sink events.Sink, clock *wallclock.Policy) *Service {
	return &Service{
		auctionRepo: auctionRepo,
		userRepo:    userRepo,
		sink:        sink,
		clock:       clock,
	}
}

// Remind tells the auction room how long is left. Auctions that already
// ended or were settled get nothing.
func (s *Service) Remind(ctx context.Context, auctionID int) error {
	auction, err := s.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil || auction.Status != domain.AuctionActive {
		zap.L().Info("reminder skipped", zap.Int("auctionID", auctionID))
		return nil
	}
	remaining := s.clock.Until(auction.EndsAt)
	if remaining <= 0 {
		return nil
	}

	s.sink.Publish(ctx, domain.Event{
		AuctionID: auctionID,
		Type:      domain.EventAuctionEndingSoon,
		Payload: domain.AuctionEndingSoonPayload{
			AuctionID:        auctionID,
			SecondsRemaining: int(remaining.Seconds()),
		},
	})
	return nil
}

func (s *Service) NotifyOutbid(ctx context.Context, auctionID, userID int, amount decimal.Decimal) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		zap.L().Warn("outbid user not found", zap.Int("userID", userID), zap.Int("auctionID", auctionID))
		return nil
	}
	zap.L().Info("NOTIFY: user was outbid",
		zap.String("email", user.Email),
		zap.Int("auctionID", auctionID),
		zap.String("newBid", amount.String()),
	)
	return nil
}
