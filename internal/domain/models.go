package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int             `db:"id"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	Balance      decimal.Decimal `db:"balance"`
	Reserved     decimal.Decimal `db:"reserved"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Available is the part of the balance not held by leading bids.
func (u *User) Available() decimal.Decimal {
	return u.Balance.Sub(u.Reserved)
}

type AuctionStatus string

const (
	AuctionDraft   AuctionStatus = "DRAFT"
	AuctionActive  AuctionStatus = "ACTIVE"
	AuctionSold    AuctionStatus = "SOLD"
	AuctionExpired AuctionStatus = "EXPIRED"
)

func (s AuctionStatus) Valid() bool {
	switch s {
	case AuctionDraft, AuctionActive, AuctionSold, AuctionExpired:
		return true
	}
	return false
}

type AuctionItem struct {
	ID            int             `db:"id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	StartingPrice decimal.Decimal `db:"starting_price"`
	CurrentPrice  decimal.Decimal `db:"current_price"`
	Status        AuctionStatus   `db:"status"`
	CreatorID     int             `db:"creator_id"`
	WinnerID      *int            `db:"winner_id"`
	EndsAt        time.Time       `db:"ends_at"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Bid struct {
	ID            int             `db:"id"`
	Amount        decimal.Decimal `db:"amount"`
	BidderID      int             `db:"bidder_id"`
	AuctionItemID int             `db:"auction_item_id"`
	CreatedAt     time.Time       `db:"created_at"`

	// BidderEmail is filled by listing queries only.
	BidderEmail string `db:"-"`
}
