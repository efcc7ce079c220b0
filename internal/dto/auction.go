package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type CreateAuctionRequestDTO struct {
	Title         string          `json:"title" validate:"required,max=200" example:"Vintage camera"`
	Description   string          `json:"description" validate:"max=5000" example:"Fully working, with leather case"`
	StartingPrice decimal.Decimal `json:"startingPrice" validate:"required,gt=0" swaggertype:"string" example:"100"`
	EndsAt        string          `json:"endsAt" validate:"required" example:"2026-03-01T18:30:00"`
}

type BidRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0" swaggertype:"string" example:"150.50"`
}

type AuctionDTO struct {
	ID             int             `json:"id" example:"1"`
	Title          string          `json:"title" example:"Vintage camera"`
	Description    string          `json:"description" example:"Fully working, with leather case"`
	StartingPrice  decimal.Decimal `json:"startingPrice" swaggertype:"string" example:"100"`
	CurrentPrice   decimal.Decimal `json:"currentPrice" swaggertype:"string" example:"150.50"`
	Status         string          `json:"status" example:"ACTIVE"`
	CreatorID      int             `json:"creatorId" example:"1"`
	WinnerID       *int            `json:"winnerId" example:"2"`
	EndsAt         time.Time       `json:"endsAt" example:"2026-03-01T13:00:00Z"`
	EndsAtLocal    string          `json:"endsAtLocal" example:"2026-03-01 18:30:00"`
	CreatedAt      time.Time       `json:"createdAt" example:"2026-03-01T06:00:00Z"`
	CreatedAtLocal string          `json:"createdAtLocal" example:"2026-03-01 11:30:00"`
}

type BidDTO struct {
	ID            int             `json:"id" example:"10"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"150.50"`
	BidderID      int             `json:"bidderId" example:"2"`
	BidderEmail   string          `json:"bidderEmail,omitempty" example:"bob@example.com"`
	AuctionItemID int             `json:"auctionItemId" example:"1"`
	CreatedAt     time.Time       `json:"createdAt" example:"2026-03-01T06:10:00Z"`
}

type AuctionDetailsDTO struct {
	AuctionDTO
	CreatorEmail string   `json:"creatorEmail" example:"alice@example.com"`
	Bids         []BidDTO `json:"bids"`
}

type PaginationDTO struct {
	Total      int `json:"total" example:"42"`
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalPages int `json:"totalPages" example:"5"`
}

type AuctionListDTO struct {
	Data       []AuctionDTO  `json:"data"`
	Pagination PaginationDTO `json:"pagination"`
}

type AuctionResponseDTO struct {
	Message string     `json:"message" example:"Auction created successfully"`
	Data    AuctionDTO `json:"data"`
}

type BidResultDTO struct {
	Bid     BidDTO     `json:"bid"`
	Auction AuctionDTO `json:"auction"`
}

type BidResponseDTO struct {
	Message string       `json:"message" example:"Bid placed successfully"`
	Data    BidResultDTO `json:"data"`
}

// FromAuction reports endsAt as a real instant whatever the storage representation.
func FromAuction(a *domain.AuctionItem, clock *wallclock.Policy) AuctionDTO {
	return AuctionDTO{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		StartingPrice:  a.StartingPrice,
		CurrentPrice:   a.CurrentPrice,
		Status:         string(a.Status),
		CreatorID:      a.CreatorID,
		WinnerID:       a.WinnerID,
		EndsAt:         clock.InstantOf(a.EndsAt),
		EndsAtLocal:    clock.Display(a.EndsAt),
		CreatedAt:      a.CreatedAt.UTC(),
		CreatedAtLocal: clock.DisplayInstant(a.CreatedAt),
	}
}

func FromAuctions(items []domain.AuctionItem, clock *wallclock.Policy) []AuctionDTO {
	out := make([]AuctionDTO, 0, len(items))
	for i := range items {
		out = append(out, FromAuction(&items[i], clock))
	}
	return out
}

func FromBid(b *domain.Bid) BidDTO {
	return BidDTO{
		ID:            b.ID,
		Amount:        b.Amount,
		BidderID:      b.BidderID,
		BidderEmail:   b.BidderEmail,
		AuctionItemID: b.AuctionItemID,
		CreatedAt:     b.CreatedAt.UTC(),
	}
}

func FromBids(bids []domain.Bid) []BidDTO {
	out := make([]BidDTO, 0, len(bids))
	for i := range bids {
		out = append(out, FromBid(&bids[i]))
	}
	return out
}
