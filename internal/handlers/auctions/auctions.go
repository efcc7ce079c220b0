package auctions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/validate"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type Service interface {
	CreateAuction(ctx context.Context, creatorID int, input auctionservice.CreateAuctionInput) (*domain.AuctionItem, error)
	PlaceBid(ctx context.Context, auctionID, bidderID int, amount decimal.Decimal) (*auctionservice.BidResult, error)
	GetAuctionByID(ctx context.Context, id int) (*auctionservice.AuctionDetails, error)
	ListAuctions(ctx context.Context, status string, page, limit int) (*auctionservice.AuctionPage, error)
}

type AuctionHandler struct {
	auctionService Service
	clock          *wallclock.Policy
}

func New(auctionService Service, clock *wallclock.Policy) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
		clock:          clock,
	}
}

// statusFor maps service errors onto HTTP codes. Unknown errors are internal.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, auctionservice.ErrInvalidAuction),
		errors.Is(err, auctionservice.ErrInvalidDeadline),
		errors.Is(err, auctionservice.ErrInvalidBid),
		errors.Is(err, auctionservice.ErrInvalidStatus):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, auctionservice.ErrAuctionNotFound),
		errors.Is(err, auctionservice.ErrBidderNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, auctionservice.ErrAuctionNotActive),
		errors.Is(err, auctionservice.ErrBidTooLow):
		return http.StatusConflict, err.Error()
	case errors.Is(err, auctionservice.ErrInsufficientBalance):
		return http.StatusPaymentRequired, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func auctionID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// List godoc
//
//	@Summary		List auctions
//	@Description	Page through auctions, newest first, optionally filtered by status.
//	@Tags			Auctions
//	@Produce		json
//	@Param			status	query		string	false	"ACTIVE, SOLD, EXPIRED or DRAFT"
//	@Param			page	query		int		false	"Page number, starting at 1"
//	@Param			limit	query		int		false	"Page size, at most 100"
//	@Success		200		{object}	dto.AuctionListDTO
//	@Failure		400		{object}	utils.Response	"Invalid query"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [get]
func (h *AuctionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	result, err := h.auctionService.ListAuctions(r.Context(), r.URL.Query().Get("status"), page, limit)
	if err != nil {
		code, msg := statusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionListDTO{
		Data: dto.FromAuctions(result.Auctions, h.clock),
		Pagination: dto.PaginationDTO{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get godoc
//
//	@Summary		Get auction
//	@Description	Auction details with the creator email and the most recent bids.
//	@Tags			Auctions
//	@Produce		json
//	@Param			id	path		int	true	"Auction ID"
//	@Success		200	{object}	dto.AuctionDetailsDTO
//	@Failure		400	{object}	utils.Response	"Invalid ID"
//	@Failure		404	{object}	utils.Response	"Auction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{id} [get]
func (h *AuctionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := auctionID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	details, err := h.auctionService.GetAuctionByID(r.Context(), id)
	if err != nil {
		code, msg := statusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuctionDetailsDTO{
		AuctionDTO:   dto.FromAuction(details.Auction, h.clock),
		CreatorEmail: details.CreatorEmail,
		Bids:         dto.FromBids(details.Bids),
	})
}

// Create godoc
//
//	@Summary		Create auction
//	@Description	Start an auction. endsAt is local wall-clock time in the auction zone (YYYY-MM-DDTHH:MM:SS) or RFC3339.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAuctionRequestDTO	true	"Auction"
//	@Success		201		{object}	dto.AuctionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid auction"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions [post]
func (h *AuctionHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateAuctionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.auctionService.CreateAuction(r.Context(), principal.UserID, auctionservice.CreateAuctionInput{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		EndsAt:        req.EndsAt,
	})
	if err != nil {
		code, msg := statusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AuctionResponseDTO{
		Message: "Auction created successfully",
		Data:    dto.FromAuction(item, h.clock),
	})
}

// Bid godoc
//
//	@Summary		Place a bid
//	@Description	Bid on an active auction. The amount must beat the current price and be covered by the available balance.
//	@Tags			Auctions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Auction ID"
//	@Param			request	body		dto.BidRequestDTO	true	"Bid"
//	@Success		201		{object}	dto.BidResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid auction ID or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Auction not found"
//	@Failure		409		{object}	utils.Response	"Auction not active or bid too low"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auctions/{id}/bid [post]
func (h *AuctionHandler) Bid(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := auctionID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req dto.BidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auctionService.PlaceBid(r.Context(), id, principal.UserID, req.Amount)
	if err != nil {
		code, msg := statusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BidResponseDTO{
		Message: "Bid placed successfully",
		Data: dto.BidResultDTO{
			Bid:     dto.FromBid(result.Bid),
			Auction: dto.FromAuction(result.Auction, h.clock),
		},
	})
}
