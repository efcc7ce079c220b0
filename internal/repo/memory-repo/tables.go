package memoryrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	auctionrepo "github.com/GlebRadaev/auctionhouse/internal/repo/auction-repo"
	balancerepo "github.com/GlebRadaev/auctionhouse/internal/repo/balance-repo"
)

type Users struct{ s *Store }

func (r *Users) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var found *domain.User
	err := r.s.exec(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Email == email {
				u := u
				found = &u
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *Users) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var found *domain.User
	err := r.s.exec(ctx, func(st *state) error {
		if u, ok := st.users[id]; ok {
			found = &u
		}
		return nil
	})
	return found, err
}

func (r *Users) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.s.exec(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Email == user.Email {
				return ErrDuplicateEmail
			}
		}
		row := *user
		row.ID = st.nextUser + 1
		row.CreatedAt = r.s.clock.Now().UTC()
		if err := checkUser(row); err != nil {
			return err
		}
		st.nextUser++
		st.users[row.ID] = row
		user.ID, user.CreatedAt = row.ID, row.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

type Funds struct{ s *Store }

func (r *Funds) LockUser(ctx context.Context, userID int) (*domain.User, error) {
	return (&Users{r.s}).FindByID(ctx, userID)
}

func (r *Funds) SetFunds(ctx context.Context, userID int, balance, reserved decimal.Decimal) error {
	return r.s.exec(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return fmt.Errorf("%w: user %d", balancerepo.ErrUserNotUpdated, userID)
		}
		u.Balance, u.Reserved = balance.Round(2), reserved.Round(2)
		if err := checkUser(u); err != nil {
			return err
		}
		st.users[userID] = u
		return nil
	})
}

type Auctions struct{ s *Store }

func (r *Auctions) Create(ctx context.Context, item *domain.AuctionItem) (*domain.AuctionItem, error) {
	err := r.s.exec(ctx, func(st *state) error {
		row := *item
		row.ID = st.nextAuction + 1
		row.CreatedAt = r.s.clock.Now().UTC()
		if err := checkAuction(st, row); err != nil {
			return err
		}
		st.nextAuction++
		st.auctions[row.ID] = row
		item.ID, item.CreatedAt = row.ID, row.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Auctions) FindByID(ctx context.Context, id int) (*domain.AuctionItem, error) {
	var found *domain.AuctionItem
	err := r.s.exec(ctx, func(st *state) error {
		if a, ok := st.auctions[id]; ok {
			found = &a
		}
		return nil
	})
	return found, err
}

func (r *Auctions) LockByID(ctx context.Context, id int) (*domain.AuctionItem, error) {
	return r.FindByID(ctx, id)
}

func (r *Auctions) UpdateBidState(ctx context.Context, id int, price decimal.Decimal, winnerID int, endsAt time.Time) error {
	return r.s.exec(ctx, func(st *state) error {
		a, ok := st.auctions[id]
		if !ok {
			return fmt.Errorf("%w: auction %d", auctionrepo.ErrAuctionNotUpdated, id)
		}
		winner := winnerID
		a.CurrentPrice, a.WinnerID, a.EndsAt = price.Round(2), &winner, endsAt
		if err := checkAuction(st, a); err != nil {
			return err
		}
		st.auctions[id] = a
		return nil
	})
}

func (r *Auctions) UpdateStatus(ctx context.Context, id int, status domain.AuctionStatus) error {
	return r.s.exec(ctx, func(st *state) error {
		a, ok := st.auctions[id]
		if !ok || a.Status != domain.AuctionActive {
			return fmt.Errorf("%w: auction %d", auctionrepo.ErrAuctionNotUpdated, id)
		}
		a.Status = status
		if err := checkAuction(st, a); err != nil {
			return err
		}
		st.auctions[id] = a
		return nil
	})
}

func newestFirst(items []domain.AuctionItem) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
}

func (r *Auctions) List(ctx context.Context, status domain.AuctionStatus, limit, offset int) ([]domain.AuctionItem, int, error) {
	var page []domain.AuctionItem
	var total int
	err := r.s.exec(ctx, func(st *state) error {
		var matched []domain.AuctionItem
		for _, a := range st.auctions {
			if status == "" || a.Status == status {
				matched = append(matched, a)
			}
		}
		newestFirst(matched)
		total = len(matched)
		page = make([]domain.AuctionItem, 0, limit)
		for i := offset; i < len(matched) && len(page) < limit; i++ {
			page = append(page, matched[i])
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

func (r *Auctions) FindOverdueIDs(ctx context.Context, now time.Time) ([]int, error) {
	var overdue []domain.AuctionItem
	err := r.s.exec(ctx, func(st *state) error {
		for _, a := range st.auctions {
			if a.Status == domain.AuctionActive && !a.EndsAt.After(now) {
				overdue = append(overdue, a)
			}
		}
		return nil
	})
	sort.Slice(overdue, func(i, j int) bool { return overdue[i].EndsAt.Before(overdue[j].EndsAt) })
	ids := make([]int, 0, len(overdue))
	for _, a := range overdue {
		ids = append(ids, a.ID)
	}
	return ids, err
}

func (r *Auctions) FindWonBy(ctx context.Context, userID int) ([]domain.AuctionItem, error) {
	var won []domain.AuctionItem
	err := r.s.exec(ctx, func(st *state) error {
		for _, a := range st.auctions {
			if a.Status == domain.AuctionSold && a.WinnerID != nil && *a.WinnerID == userID {
				won = append(won, a)
			}
		}
		return nil
	})
	sort.Slice(won, func(i, j int) bool { return won[i].EndsAt.After(won[j].EndsAt) })
	return won, err
}

type Bids struct{ s *Store }

func (r *Bids) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	err := r.s.exec(ctx, func(st *state) error {
		if !bid.Amount.IsPositive() {
			return fmt.Errorf("%w: bids amount", ErrConstraint)
		}
		if _, ok := st.users[bid.BidderID]; !ok {
			return fmt.Errorf("%w: bidder %d", ErrForeignKey, bid.BidderID)
		}
		if _, ok := st.auctions[bid.AuctionItemID]; !ok {
			return fmt.Errorf("%w: auction %d", ErrForeignKey, bid.AuctionItemID)
		}
		st.nextBid++
		row := *bid
		row.ID = st.nextBid
		row.CreatedAt = r.s.clock.Now().UTC()
		row.BidderEmail = ""
		st.bids = append(st.bids, row)
		bid.ID, bid.CreatedAt = row.ID, row.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}

func (r *Bids) ListByAuction(ctx context.Context, auctionID, limit int) ([]domain.Bid, error) {
	var bids []domain.Bid
	err := r.s.exec(ctx, func(st *state) error {
		for i := len(st.bids) - 1; i >= 0 && len(bids) < limit; i-- {
			b := st.bids[i]
			if b.AuctionItemID != auctionID {
				continue
			}
			b.BidderEmail = st.users[b.BidderID].Email
			bids = append(bids, b)
		}
		return nil
	})
	return bids, err
}

// All returns every bid of an auction in insertion order.
func (r *Bids) All(ctx context.Context, auctionID int) ([]domain.Bid, error) {
	var bids []domain.Bid
	err := r.s.exec(ctx, func(st *state) error {
		for _, b := range st.bids {
			if b.AuctionItemID == auctionID {
				bids = append(bids, b)
			}
		}
		return nil
	})
	return bids, err
}

type Jobs struct{ s *Store }

func (r *Jobs) Enqueue(ctx context.Context, job domain.Job) (bool, error) {
	inserted := false
	err := r.s.exec(ctx, func(st *state) error {
		if rec, ok := st.jobs[job.ID]; ok && rec.job.Status != domain.JobCompleted && rec.job.Status != domain.JobFailed {
			return nil
		}
		if job.MaxAttempts <= 0 {
			job.MaxAttempts = domain.DefaultMaxAttempts
		}
		now := r.s.clock.Now().UTC()
		job.Status = domain.JobPending
		job.Attempts = 0
		job.LastError, job.LockedBy, job.LockedAt = "", "", nil
		if rec, ok := st.jobs[job.ID]; ok {
			job.CreatedAt = rec.job.CreatedAt
		} else {
			job.CreatedAt = now
		}
		st.jobs[job.ID] = jobRecord{job: job, updatedAt: now}
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *Jobs) ClaimDue(ctx context.Context, now time.Time, workerID string, limit int) ([]domain.Job, error) {
	var claimed []domain.Job
	err := r.s.exec(ctx, func(st *state) error {
		var due []domain.Job
		for _, rec := range st.jobs {
			if rec.job.Status == domain.JobPending && !rec.job.RunAt.After(now) {
				due = append(due, rec.job)
			}
		}
		sort.Slice(due, func(i, j int) bool {
			if !due[i].RunAt.Equal(due[j].RunAt) {
				return due[i].RunAt.Before(due[j].RunAt)
			}
			return due[i].ID < due[j].ID
		})
		for _, job := range due {
			if len(claimed) == limit {
				break
			}
			lockedAt := now
			job.Status = domain.JobRunning
			job.Attempts++
			job.LockedBy, job.LockedAt = workerID, &lockedAt
			st.jobs[job.ID] = jobRecord{job: job, updatedAt: r.s.clock.Now().UTC()}
			claimed = append(claimed, job)
		}
		return nil
	})
	return claimed, err
}

// finish applies fn to a running job still locked by workerID.
func (r *Jobs) finish(ctx context.Context, id, workerID string, fn func(job *domain.Job)) error {
	return r.s.exec(ctx, func(st *state) error {
		rec, ok := st.jobs[id]
		if !ok || rec.job.Status != domain.JobRunning || rec.job.LockedBy != workerID {
			return domain.ErrJobNotOwned
		}
		fn(&rec.job)
		rec.job.LockedBy, rec.job.LockedAt = "", nil
		rec.updatedAt = r.s.clock.Now().UTC()
		st.jobs[id] = rec
		return nil
	})
}

func (r *Jobs) Complete(ctx context.Context, id, workerID string) error {
	return r.finish(ctx, id, workerID, func(job *domain.Job) {
		job.Status = domain.JobCompleted
	})
}

func (r *Jobs) Retry(ctx context.Context, id, workerID string, runAt time.Time, errMsg string) error {
	return r.finish(ctx, id, workerID, func(job *domain.Job) {
		job.Status, job.RunAt, job.LastError = domain.JobPending, runAt, errMsg
	})
}

func (r *Jobs) Fail(ctx context.Context, id, workerID string, errMsg string) error {
	return r.finish(ctx, id, workerID, func(job *domain.Job) {
		job.Status, job.LastError = domain.JobFailed, errMsg
	})
}

func (r *Jobs) RequeueStalled(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	err := r.s.exec(ctx, func(st *state) error {
		for id, rec := range st.jobs {
			if rec.job.Status == domain.JobRunning && rec.job.LockedAt != nil && rec.job.LockedAt.Before(before) {
				rec.job.Status = domain.JobPending
				rec.job.LockedBy, rec.job.LockedAt = "", nil
				rec.updatedAt = r.s.clock.Now().UTC()
				st.jobs[id] = rec
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *Jobs) Prune(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error) {
	var n int64
	err := r.s.exec(ctx, func(st *state) error {
		for id, rec := range st.jobs {
			if (rec.job.Status == domain.JobCompleted && rec.updatedAt.Before(completedBefore)) ||
				(rec.job.Status == domain.JobFailed && rec.updatedAt.Before(failedBefore)) {
				delete(st.jobs, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// Get returns a copy of a job, for assertions.
func (r *Jobs) Get(ctx context.Context, id string) (*domain.Job, error) {
	var found *domain.Job
	err := r.s.exec(ctx, func(st *state) error {
		if rec, ok := st.jobs[id]; ok {
			job := rec.job
			found = &job
		}
		return nil
	})
	return found, err
}

// Pending lists pending jobs ordered by run_at.
func (r *Jobs) Pending(ctx context.Context) ([]domain.Job, error) {
	var pending []domain.Job
	err := r.s.exec(ctx, func(st *state) error {
		for _, rec := range st.jobs {
			if rec.job.Status == domain.JobPending {
				pending = append(pending, rec.job)
			}
		}
		return nil
	})
	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].RunAt.Equal(pending[j].RunAt) {
			return pending[i].RunAt.Before(pending[j].RunAt)
		}
		return pending[i].ID < pending[j].ID
	})
	return pending, err
}
