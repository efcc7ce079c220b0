package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type AuctionRepo interface {
	FindWonBy(ctx context.Context, userID int) ([]domain.AuctionItem, error)
}

type Service struct {
	userRepo    UserRepo
	auctionRepo AuctionRepo
}

func New(userRepo UserRepo, auctionRepo AuctionRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		auctionRepo: auctionRepo,
	}
}

var ErrUserNotFound = errors.New("user not found")

type Profile struct {
	User        *domain.User
	WonAuctions []domain.AuctionItem
}

// Profile returns the account with its credential hash cleared, plus every auction it has won.
func (s *Service) Profile(ctx context.Context, userID int) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.PasswordHash = ""

	won, err := s.auctionRepo.FindWonBy(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get won auctions", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if won == nil {
		won = []domain.AuctionItem{}
	}
	return &Profile{User: user, WonAuctions: won}, nil
}
