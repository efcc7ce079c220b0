package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type UserDTO struct {
	ID        int              `json:"id" example:"1"`
	Email     string           `json:"email" example:"alice@example.com"`
	Balance   *decimal.Decimal `json:"balance,omitempty" swaggertype:"string" example:"1000000"`
	Reserved  *decimal.Decimal `json:"reserved,omitempty" swaggertype:"string" example:"150"`
	Available *decimal.Decimal `json:"available,omitempty" swaggertype:"string" example:"999850"`
	CreatedAt time.Time        `json:"createdAt" example:"2026-03-01T06:00:00Z"`
}

type ProfileResponseDTO struct {
	UserDTO
	WonAuctions []AuctionDTO `json:"wonAuctions"`
}

// FromUser never exposes the credential hash. Funds are included only when withFunds is set.
func FromUser(u *domain.User, withFunds bool) UserDTO {
	out := UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
	if withFunds {
		balance, reserved, available := u.Balance, u.Reserved, u.Available()
		out.Balance, out.Reserved, out.Available = &balance, &reserved, &available
	}
	return out
}

func FromProfile(u *domain.User, won []domain.AuctionItem, clock *wallclock.Policy) ProfileResponseDTO {
	return ProfileResponseDTO{
		UserDTO:     FromUser(u, true),
		WonAuctions: FromAuctions(won, clock),
	}
}
