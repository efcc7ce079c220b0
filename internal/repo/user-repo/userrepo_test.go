package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var userColumns = []string{"id", "email", "password_hash", "balance", "reserved", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	balance := decimal.NewFromInt(1000)
	reserved := decimal.NewFromInt(150)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "a@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "a@example.com", "hashed_password", balance, reserved, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, balance, reserved, created_at FROM users WHERE email = $1")).
					WithArgs("a@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Email:        "a@example.com",
				PasswordHash: "hashed_password",
				Balance:      balance,
				Reserved:     reserved,
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, balance, reserved, created_at FROM users WHERE email = $1")).
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "a@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, balance, reserved, created_at FROM users WHERE email = $1")).
					WithArgs("a@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := pgxmock.NewRows(userColumns).
		AddRow(7, "b@example.com", "hash", decimal.NewFromInt(50), decimal.Zero, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(7).
		WillReturnRows(rows)

	user, err := repo.FindByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "b@example.com", user.Email)
	assert.True(t, user.Balance.Equal(decimal.NewFromInt(50)))

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(8).
		WillReturnError(pgx.ErrNoRows)

	user, err = repo.FindByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	initial := decimal.NewFromInt(1000000)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				Balance:      initial,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO users (email, password_hash, balance, reserved)
					VALUES ($1, $2, $3, 0)
					RETURNING id, created_at
				`)).
					WithArgs("new@example.com", "hashed_password", initial).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
			result: &domain.User{
				ID:           1,
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				Balance:      initial,
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				Balance:      initial,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash, balance, reserved)`)).
					WithArgs("new@example.com", "hashed_password", initial).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
