package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventNewBid            EventType = "NEW_BID"
	EventAuctionSold       EventType = "AUCTION_SOLD"
	EventAuctionExpired    EventType = "AUCTION_EXPIRED"
	EventAuctionEndingSoon EventType = "AUCTION_ENDING_SOON"
)

// Event is published to the room of a single auction.
type Event struct {
	AuctionID int
	Type      EventType
	Payload   any
}

type NewBidPayload struct {
	Amount     decimal.Decimal `json:"amount"`
	BidderName string          `json:"bidderName"`
	Timestamp  time.Time       `json:"timestamp"`
}

type AuctionSoldPayload struct {
	AuctionID  int             `json:"auctionId"`
	WinnerName string          `json:"winnerName"`
	FinalPrice decimal.Decimal `json:"finalPrice"`
}

type AuctionExpiredPayload struct {
	AuctionID int `json:"auctionId"`
}

type AuctionEndingSoonPayload struct {
	AuctionID        int `json:"auctionId"`
	SecondsRemaining int `json:"secondsRemaining"`
}
