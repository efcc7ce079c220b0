package auctionrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"go.uber.org/zap"
)

const auctionColumns = `id, title, description, starting_price, current_price, status, creator_id, winner_id, ends_at, created_at`

var ErrAuctionNotUpdated = errors.New("auction not updated")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAuction(row pgx.Row) (*domain.AuctionItem, error) {
	var item domain.AuctionItem
	var status string
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.StartingPrice, &item.CurrentPrice,
		&status, &item.CreatorID, &item.WinnerID, &item.EndsAt, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Status = domain.AuctionStatus(status)
	return &item, nil
}

func (r *Repository) Create(ctx context.Context, item *domain.AuctionItem) (*domain.AuctionItem, error) {
	query := `
        INSERT INTO auction_items (title, description, starting_price, current_price, status, creator_id, ends_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		item.Title, item.Description, item.StartingPrice, item.CurrentPrice, string(item.Status), item.CreatorID, item.EndsAt,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		zap.L().Error("can't save auction", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.AuctionItem, error) {
	query := `SELECT ` + auctionColumns + ` FROM auction_items WHERE id = $1`
	item, err := scanAuction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find auction", zap.Int("auctionID", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// LockByID takes the exclusive row lock on an auction. Must run inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.AuctionItem, error) {
	query := `SELECT ` + auctionColumns + ` FROM auction_items WHERE id = $1 FOR UPDATE`
	item, err := scanAuction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock auction", zap.Int("auctionID", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) UpdateBidState(ctx context.Context, id int, price decimal.Decimal, winnerID int, endsAt time.Time) error {
	query := `
        UPDATE auction_items
        SET current_price = $1, winner_id = $2, ends_at = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, price, winnerID, endsAt, id)
		if err != nil {
			zap.L().Error("failed to update auction bid state", zap.Int("auctionID", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("%w: auction %d", ErrAuctionNotUpdated, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatus moves an ACTIVE auction to a terminal status. Terminal rows are never touched.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.AuctionStatus) error {
	query := `
        UPDATE auction_items
        SET status = $1
        WHERE id = $2 AND status = 'ACTIVE'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, string(status), id)
		if err != nil {
			zap.L().Error("failed to update auction status", zap.Int("auctionID", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("%w: auction %d", ErrAuctionNotUpdated, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// List returns a page of auctions, newest first, and the total matching count.
// An empty status matches every auction.
func (r *Repository) List(ctx context.Context, status domain.AuctionStatus, limit, offset int) ([]domain.AuctionItem, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM auction_items WHERE ($1::text = '' OR status = $1)`, string(status)).Scan(&total)
	if err != nil {
		zap.L().Error("can't count auctions", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT ` + auctionColumns + `
        FROM auction_items
        WHERE ($1::text = '' OR status = $1)
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		zap.L().Error("can't list auctions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]domain.AuctionItem, 0, limit)
	for rows.Next() {
		item, err := scanAuction(rows)
		if err != nil {
			zap.L().Error("can't scan auction row", zap.Error(err))
			return nil, 0, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindOverdueIDs returns ACTIVE auctions whose stored deadline is at or before now.
func (r *Repository) FindOverdueIDs(ctx context.Context, now time.Time) ([]int, error) {
	query := `
        SELECT id
        FROM auction_items
        WHERE status = 'ACTIVE' AND ends_at <= $1
        ORDER BY ends_at ASC
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get overdue auctions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan overdue auction id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) FindWonBy(ctx context.Context, userID int) ([]domain.AuctionItem, error) {
	query := `
        SELECT ` + auctionColumns + `
        FROM auction_items
        WHERE winner_id = $1 AND status = 'SOLD'
        ORDER BY ends_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get won auctions", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.AuctionItem
	for rows.Next() {
		item, err := scanAuction(rows)
		if err != nil {
			zap.L().Error("can't scan won auction row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
