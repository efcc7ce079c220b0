package auctions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/service/auctionservice"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

func NewMock(t *testing.T) (*AuctionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	clock, err := wallclock.New("Asia/Kolkata", false, wallclock.NewManualClock(time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	return New(service, clock), service
}

type decimalMatcher struct{ d decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.d)
}

func (m decimalMatcher) String() string { return fmt.Sprintf("is decimal %s", m.d) }

func newRequest(method, url, body, id string, principal *auth.Principal) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	ctx := req.Context()
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if principal != nil {
		ctx = auth.WithPrincipal(ctx, *principal)
	}
	return req.WithContext(ctx)
}

var bob = &auth.Principal{UserID: 2, Email: "bob@example.com"}

func lamp() *domain.AuctionItem {
	return &domain.AuctionItem{
		ID:            1,
		Title:         "Lamp",
		StartingPrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(100),
		Status:        domain.AuctionActive,
		CreatorID:     1,
		EndsAt:        time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC),
	}
}

func assertMessage(t *testing.T, rr *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, expected, resp.Message)
}

func TestBidHandler(t *testing.T) {
	handler, service := NewMock(t)
	amount := decimalMatcher{decimal.RequireFromString("150.50")}

	tests := []struct {
		name          string
		id            string
		body          string
		principal     *auth.Principal
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful bid",
			id:        "1",
			body:      `{"amount":"150.50"}`,
			principal: bob,
			prepareMock: func() {
				item := lamp()
				item.CurrentPrice = decimal.RequireFromString("150.50")
				item.WinnerID = &bob.UserID
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(&auctionservice.BidResult{
					Bid:     &domain.Bid{ID: 10, Amount: item.CurrentPrice, BidderID: 2, AuctionItemID: 1},
					Auction: item,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:      "Numeric amount",
			id:        "1",
			body:      `{"amount":150.50}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(&auctionservice.BidResult{
					Bid:     &domain.Bid{ID: 10},
					Auction: lamp(),
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Unauthenticated",
			id:            "1",
			body:          `{"amount":"150.50"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Bad auction id",
			id:            "abc",
			body:          `{"amount":"150.50"}`,
			principal:     bob,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid ID",
		},
		{
			name:          "Missing amount",
			id:            "1",
			body:          `{}`,
			principal:     bob,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount failed on the 'required' rule",
		},
		{
			name:          "Malformed body",
			id:            "1",
			body:          `{"amount":"lots"}`,
			principal:     bob,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:      "Too many decimals",
			id:        "1",
			body:      `{"amount":"150.505"}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, gomock.Any()).Return(nil, auctionservice.ErrInvalidBid)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: auctionservice.ErrInvalidBid.Error(),
		},
		{
			name:      "Auction not found",
			id:        "1",
			body:      `{"amount":"150.50"}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(nil, auctionservice.ErrAuctionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: auctionservice.ErrAuctionNotFound.Error(),
		},
		{
			name:      "Auction not active",
			id:        "1",
			body:      `{"amount":"150.50"}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(nil, auctionservice.ErrAuctionNotActive)
			},
			expectedCode:  http.StatusConflict,
			expectedError: auctionservice.ErrAuctionNotActive.Error(),
		},
		{
			name:      "Bid too low",
			id:        "1",
			body:      `{"amount":"150.50"}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(nil, auctionservice.ErrBidTooLow)
			},
			expectedCode:  http.StatusConflict,
			expectedError: auctionservice.ErrBidTooLow.Error(),
		},
		{
			name:      "Insufficient balance",
			id:        "1",
			body:      `{"amount":"150.50"}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(nil, auctionservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: auctionservice.ErrInsufficientBalance.Error(),
		},
		{
			name:      "Storage failure",
			id:        "1",
			body:      `{"amount":"150.50"}`,
			principal: bob,
			prepareMock: func() {
				service.EXPECT().PlaceBid(gomock.Any(), 1, 2, amount).Return(nil, errors.New("deadlock detected"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Bid(rr, newRequest(http.MethodPost, "/api/auctions/"+tt.id+"/bid", tt.body, tt.id, tt.principal))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assertMessage(t, rr, tt.expectedError)
			}
		})
	}
}

func TestBidHandler_ResponseBody(t *testing.T) {
	handler, service := NewMock(t)

	item := lamp()
	item.CurrentPrice = decimal.NewFromInt(150)
	item.WinnerID = &bob.UserID
	service.EXPECT().PlaceBid(gomock.Any(), 1, 2, gomock.Any()).Return(&auctionservice.BidResult{
		Bid:     &domain.Bid{ID: 10, Amount: decimal.NewFromInt(150), BidderID: 2, AuctionItemID: 1},
		Auction: item,
	}, nil)

	rr := httptest.NewRecorder()
	handler.Bid(rr, newRequest(http.MethodPost, "/api/auctions/1/bid", `{"amount":150}`, "1", bob))

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp dto.BidResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Bid placed successfully", resp.Message)
	assert.Equal(t, 10, resp.Data.Bid.ID)
	assert.True(t, resp.Data.Auction.CurrentPrice.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, *resp.Data.Auction.WinnerID)
	assert.Equal(t, "2026-03-01 18:30:00", resp.Data.Auction.EndsAtLocal)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	alice := &auth.Principal{UserID: 1, Email: "alice@example.com"}

	tests := []struct {
		name          string
		body          string
		principal     *auth.Principal
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful creation",
			body:      `{"title":"Lamp","description":"Brass","startingPrice":"100","endsAt":"2026-03-01T18:30:00"}`,
			principal: alice,
			prepareMock: func() {
				service.EXPECT().CreateAuction(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, input auctionservice.CreateAuctionInput) (*domain.AuctionItem, error) {
						assert.Equal(t, "Lamp", input.Title)
						assert.Equal(t, "2026-03-01T18:30:00", input.EndsAt)
						assert.True(t, input.StartingPrice.Equal(decimal.NewFromInt(100)))
						return lamp(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Unauthenticated",
			body:          `{"title":"Lamp","startingPrice":"100","endsAt":"2026-03-01T18:30:00"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Missing title",
			body:          `{"startingPrice":"100","endsAt":"2026-03-01T18:30:00"}`,
			principal:     alice,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "title failed on the 'required' rule",
		},
		{
			name:          "Negative starting price",
			body:          `{"title":"Lamp","startingPrice":"-1","endsAt":"2026-03-01T18:30:00"}`,
			principal:     alice,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "startingPrice failed on the 'gt=0' rule",
		},
		{
			name:      "Deadline in the past",
			body:      `{"title":"Lamp","startingPrice":"100","endsAt":"2020-01-01T00:00:00"}`,
			principal: alice,
			prepareMock: func() {
				service.EXPECT().CreateAuction(gomock.Any(), 1, gomock.Any()).Return(nil, auctionservice.ErrInvalidDeadline)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: auctionservice.ErrInvalidDeadline.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Create(rr, newRequest(http.MethodPost, "/api/auctions", tt.body, "", tt.principal))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assertMessage(t, rr, tt.expectedError)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		service.EXPECT().GetAuctionByID(gomock.Any(), 1).Return(&auctionservice.AuctionDetails{
			Auction:      lamp(),
			CreatorEmail: "alice@example.com",
			Bids: []domain.Bid{
				{ID: 2, Amount: decimal.NewFromInt(120), BidderID: 3, BidderEmail: "carol@example.com", AuctionItemID: 1},
				{ID: 1, Amount: decimal.NewFromInt(110), BidderID: 2, BidderEmail: "bob@example.com", AuctionItemID: 1},
			},
		}, nil)

		rr := httptest.NewRecorder()
		handler.Get(rr, newRequest(http.MethodGet, "/api/auctions/1", "", "1", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.AuctionDetailsDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "alice@example.com", resp.CreatorEmail)
		assert.Equal(t, "Lamp", resp.Title)
		require.Len(t, resp.Bids, 2)
		assert.Equal(t, "carol@example.com", resp.Bids[0].BidderEmail)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().GetAuctionByID(gomock.Any(), 99).Return(nil, auctionservice.ErrAuctionNotFound)

		rr := httptest.NewRecorder()
		handler.Get(rr, newRequest(http.MethodGet, "/api/auctions/99", "", "99", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertMessage(t, rr, auctionservice.ErrAuctionNotFound.Error())
	})

	t.Run("Invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.Get(rr, newRequest(http.MethodGet, "/api/auctions/0", "", "0", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Defaults",
			url:  "/api/auctions",
			prepareMock: func() {
				service.EXPECT().ListAuctions(gomock.Any(), "", 0, 0).Return(&auctionservice.AuctionPage{
					Auctions:   []domain.AuctionItem{*lamp()},
					Total:      1,
					Page:       1,
					Limit:      10,
					TotalPages: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Filtered page",
			url:  "/api/auctions?status=ACTIVE&page=2&limit=5",
			prepareMock: func() {
				service.EXPECT().ListAuctions(gomock.Any(), "ACTIVE", 2, 5).Return(&auctionservice.AuctionPage{
					Auctions:   []domain.AuctionItem{},
					Total:      5,
					Page:       2,
					Limit:      5,
					TotalPages: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Non numeric page",
			url:          "/api/auctions?page=two",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown status",
			url:  "/api/auctions?status=PAUSED",
			prepareMock: func() {
				service.EXPECT().ListAuctions(gomock.Any(), "PAUSED", 0, 0).Return(nil, auctionservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			url:  "/api/auctions",
			prepareMock: func() {
				service.EXPECT().ListAuctions(gomock.Any(), "", 0, 0).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.List(rr, newRequest(http.MethodGet, tt.url, "", "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp dto.AuctionListDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.NotNil(t, resp.Data)
		})
	}

	t.Run("Pagination body", func(t *testing.T) {
		service.EXPECT().ListAuctions(gomock.Any(), "", 3, 10).Return(&auctionservice.AuctionPage{
			Auctions:   []domain.AuctionItem{*lamp()},
			Total:      21,
			Page:       3,
			Limit:      10,
			TotalPages: 3,
		}, nil)

		rr := httptest.NewRecorder()
		handler.List(rr, newRequest(http.MethodGet, "/api/auctions?page=3&limit=10", "", "", nil))

		var resp dto.AuctionListDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, dto.PaginationDTO{Total: 21, Page: 3, Limit: 10, TotalPages: 3}, resp.Pagination)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "2026-03-01 11:30:00", resp.Data[0].CreatedAtLocal)
	})
}
