package balancerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/pg"
	"go.uber.org/zap"
)

var ErrUserNotUpdated = errors.New("user funds not updated")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, TxManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: TxManager,
	}
}

// LockUser takes the exclusive row lock on a user. Must run inside a transaction.
func (r *Repository) LockUser(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, balance, reserved, created_at
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Balance, &user.Reserved, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock user", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) SetFunds(ctx context.Context, userID int, balance, reserved decimal.Decimal) error {
	query := `
		UPDATE users
		SET balance = $1, reserved = $2
		WHERE id = $3
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, balance, reserved, userID)
		if err != nil {
			zap.L().Error("failed to update user funds", zap.Int("userID", userID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("%w: user %d", ErrUserNotUpdated, userID)
		}
		return nil
	})
}
