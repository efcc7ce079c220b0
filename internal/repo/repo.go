package repo

import (
	"github.com/GlebRadaev/auctionhouse/internal/jobs"
	"github.com/GlebRadaev/auctionhouse/internal/lifecycle"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	auctionrepo "github.com/GlebRadaev/auctionhouse/internal/repo/auction-repo"
	balancerepo "github.com/GlebRadaev/auctionhouse/internal/repo/balance-repo"
	bidrepo "github.com/GlebRadaev/auctionhouse/internal/repo/bid-repo"
	jobrepo "github.com/GlebRadaev/auctionhouse/internal/repo/job-repo"
	memoryrepo "github.com/GlebRadaev/auctionhouse/internal/repo/memory-repo"
	userrepo "github.com/GlebRadaev/auctionhouse/internal/repo/user-repo"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/authservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/settlementservice"
	"github.com/GlebRadaev/auctionhouse/internal/service/userservice"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type UserRepo interface {
	authservice.Repo
	auctionservice.UserRepo
}

type AuctionRepo interface {
	auctionservice.AuctionRepo
	settlementservice.AuctionRepo
	userservice.AuctionRepo
}

type JobRepo interface {
	jobs.Queue
	lifecycle.Enqueuer
}

type Repositories struct {
	UserRepo    UserRepo
	AuctionRepo AuctionRepo
	BidRepo     auctionservice.BidRepo
	FundsRepo   auctionservice.FundsRepo
	JobRepo     JobRepo
	TxManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		AuctionRepo: auctionrepo.New(conn, txManager),
		BidRepo:     bidrepo.New(conn),
		FundsRepo:   balancerepo.New(conn, txManager),
		JobRepo:     jobrepo.New(conn),
		TxManager:   txManager,
	}
}

// NewInMemory backs every repository with one in-process store.
func NewInMemory(clock wallclock.Clock) (*Repositories, *memoryrepo.Store) {
	store := memoryrepo.New(clock)
	return &Repositories{
		UserRepo:    store.Users(),
		AuctionRepo: store.Auctions(),
		BidRepo:     store.Bids(),
		FundsRepo:   store.Funds(),
		JobRepo:     store.Jobs(),
		TxManager:   store,
	}, store
}
