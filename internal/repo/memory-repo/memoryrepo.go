// Package memoryrepo is an in-process ledger with the same contracts as the
// Postgres repositories. Transactions are serialized by one lock and rolled
// back from a snapshot, and the table constraints of the schema are enforced,
// so it can stand in for the database in concurrency tests and local runs.
package memoryrepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

var (
	ErrDuplicateEmail = errors.New("duplicate key value violates unique constraint \"users_email_key\"")
	ErrConstraint     = errors.New("check constraint violated")
	ErrForeignKey     = errors.New("foreign key violation")
)

type txKey struct{}

type jobRecord struct {
	job       domain.Job
	updatedAt time.Time
}

type state struct {
	users    map[int]domain.User
	auctions map[int]domain.AuctionItem
	bids     []domain.Bid
	jobs     map[string]jobRecord

	nextUser    int
	nextAuction int
	nextBid     int
}

func (st *state) clone() *state {
	c := &state{
		users:       make(map[int]domain.User, len(st.users)),
		auctions:    make(map[int]domain.AuctionItem, len(st.auctions)),
		bids:        append([]domain.Bid(nil), st.bids...),
		jobs:        make(map[string]jobRecord, len(st.jobs)),
		nextUser:    st.nextUser,
		nextAuction: st.nextAuction,
		nextBid:     st.nextBid,
	}
	for k, v := range st.users {
		c.users[k] = v
	}
	for k, v := range st.auctions {
		c.auctions[k] = v
	}
	for k, v := range st.jobs {
		c.jobs[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	clock wallclock.Clock
	st    *state
}

var _ pg.TXManager = (*Store)(nil)

func New(clock wallclock.Clock) *Store {
	if clock == nil {
		clock = wallclock.SystemClock{}
	}
	return &Store{
		clock: clock,
		st: &state{
			users:    make(map[int]domain.User),
			auctions: make(map[int]domain.AuctionItem),
			jobs:     make(map[string]jobRecord),
		},
	}
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(bool)
	return ok
}

// Begin runs fn with the store locked. Any error or panic restores the state
// seen when the transaction started. Nested calls join the outer transaction.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// exec runs a single statement, inside the caller's transaction when there is one.
func (s *Store) exec(ctx context.Context, fn func(st *state) error) error {
	if inTx(ctx) {
		return fn(s.st)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(s.st); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) Users() *Users       { return &Users{s} }
func (s *Store) Auctions() *Auctions { return &Auctions{s} }
func (s *Store) Bids() *Bids         { return &Bids{s} }
func (s *Store) Funds() *Funds       { return &Funds{s} }
func (s *Store) Jobs() *Jobs         { return &Jobs{s} }

// Snapshot returns copies of every user and auction, for assertions.
func (s *Store) Snapshot() ([]domain.User, []domain.AuctionItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.st.users))
	for _, u := range s.st.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	auctions := make([]domain.AuctionItem, 0, len(s.st.auctions))
	for _, a := range s.st.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].ID < auctions[j].ID })
	return users, auctions
}

func checkUser(u domain.User) error {
	if u.Balance.IsNegative() || u.Reserved.IsNegative() || u.Reserved.GreaterThan(u.Balance) {
		zap.L().Error("user funds constraint violated",
			zap.Int("userID", u.ID),
			zap.String("balance", u.Balance.String()),
			zap.String("reserved", u.Reserved.String()),
		)
		return fmt.Errorf("%w: users %d", ErrConstraint, u.ID)
	}
	return nil
}

func checkAuction(st *state, a domain.AuctionItem) error {
	if a.CurrentPrice.LessThan(a.StartingPrice) || a.StartingPrice.IsNegative() || !a.Status.Valid() {
		return fmt.Errorf("%w: auction_items %d", ErrConstraint, a.ID)
	}
	if _, ok := st.users[a.CreatorID]; !ok {
		return fmt.Errorf("%w: creator %d", ErrForeignKey, a.CreatorID)
	}
	if a.WinnerID != nil {
		if _, ok := st.users[*a.WinnerID]; !ok {
			return fmt.Errorf("%w: winner %d", ErrForeignKey, *a.WinnerID)
		}
	}
	return nil
}
