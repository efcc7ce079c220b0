package bidrepo

import (
	"context"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
		INSERT INTO bids (amount, bidder_id, auction_item_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, bid.Amount, bid.BidderID, bid.AuctionItemID).Scan(&bid.ID, &bid.CreatedAt)
	if err != nil {
		zap.L().Error("can't save bid", zap.Int("auctionID", bid.AuctionItemID), zap.Error(err))
		return nil, err
	}
	return bid, nil
}

// ListByAuction returns the latest bids of an auction with the bidder's email, newest first.
func (r *Repository) ListByAuction(ctx context.Context, auctionID, limit int) ([]domain.Bid, error) {
	query := `
        SELECT b.id, b.amount, b.bidder_id, b.auction_item_id, b.created_at, u.email
        FROM bids b
        JOIN users u ON u.id = b.bidder_id
        WHERE b.auction_item_id = $1
        ORDER BY b.created_at DESC, b.id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, auctionID, limit)
	if err != nil {
		zap.L().Error("failed to fetch bids", zap.Int("auctionID", auctionID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		err := rows.Scan(&b.ID, &b.Amount, &b.BidderID, &b.AuctionItemID, &b.CreatedAt, &b.BidderEmail)
		if err != nil {
			zap.L().Error("failed to scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, b)
	}

	return bids, rows.Err()
}
