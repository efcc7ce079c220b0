package service

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/events"
	auctionhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/auctions"
	authhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/auth"
	userhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/users"
	"github.com/GlebRadaev/auctionhouse/internal/lifecycle"
	"github.com/GlebRadaev/auctionhouse/internal/repo"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/authservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/notifyservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/userservice"
	pkgauth "github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type Options struct {
	JWTSecret      string
	InitialBalance decimal.Decimal
	Sink           events.Sink
	Clock          *wallclock.Policy

	// HashCost is the bcrypt cost for new passwords. Zero means bcrypt's default.
	HashCost int
}

type Services struct {
	AuthService    authhandlers.Service
	AuctionService auctionhandlers.Service
	UserService    userhandlers.Service

	SettlementService *settlementservice.Service
	NotifyService     *notifyservice.Service
	Scheduler         *lifecycle.Scheduler
	Tokens            *pkgauth.JWTService
}

func New(repo *repo.Repositories, opts Options) *Services {
	sink := opts.Sink
	if sink == nil {
		sink = events.LogSink{}
	}
	scheduler := lifecycle.New(repo.JobRepo, opts.Clock)
	tokens := pkgauth.NewJWTService(opts.JWTSecret)

	return &Services{
		AuthService: authservice.New(repo.UserRepo, pkgauth.NewHashService(opts.HashCost), tokens, opts.InitialBalance),
		AuctionService: auctionservice.New(
			repo.TxManager, repo.AuctionRepo, repo.BidRepo, repo.FundsRepo, repo.UserRepo, scheduler, sink, opts.Clock,
		),
		UserService:       userservice.New(repo.UserRepo, repo.AuctionRepo),
		SettlementService: settlementservice.New(repo.TxManager, repo.AuctionRepo, repo.FundsRepo, scheduler, sink, opts.Clock),
		NotifyService:     notifyservice.New(repo.AuctionRepo, repo.UserRepo, sink, opts.Clock),
		Scheduler:         scheduler,
		Tokens:            tokens,
	}
}
