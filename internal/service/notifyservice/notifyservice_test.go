package notifyservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/internal/events"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

var now = time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockAuctionRepo, *MockUserRepo, *events.Recorder) {
	ctrl := gomock.NewController(t)
	auctions := NewMockAuctionRepo(ctrl)
	users := NewMockUserRepo(ctrl)
	sink := &events.Recorder{}
	policy, err := wallclock.New("Asia/Kolkata", false, wallclock.NewManualClock(now))
	require.NoError(t, err)
	return New(auctions, users, sink, policy), auctions, users, sink
}

func TestRemind(t *testing.T) {
	tests := []struct {
		name      string
		item      *domain.AuctionItem
		findErr   error
		expectErr bool
		seconds   int
		published bool
	}{
		{
			name:      "Active auction",
			item:      &domain.AuctionItem{ID: 1, Status: domain.AuctionActive, EndsAt: now.Add(5 * time.Minute)},
			seconds:   300,
			published: true,
		},
		{
			name: "Settled auction",
			item: &domain.AuctionItem{ID: 1, Status: domain.AuctionSold, EndsAt: now.Add(5 * time.Minute)},
		},
		{
			name: "Deadline already passed",
			item: &domain.AuctionItem{ID: 1, Status: domain.AuctionActive, EndsAt: now.Add(-time.Second)},
		},
		{
			name: "Missing auction",
		},
		{
			name:      "Lookup failure",
			findErr:   errors.New("database error"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, auctions, _, sink := NewMock(t)
			auctions.EXPECT().FindByID(gomock.Any(), 1).Return(tt.item, tt.findErr)

			err := service.Remind(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			published := sink.Events()
			if !tt.published {
				assert.Empty(t, published)
				return
			}
			require.Len(t, published, 1)
			assert.Equal(t, domain.EventAuctionEndingSoon, published[0].Type)
			assert.Equal(t, domain.AuctionEndingSoonPayload{AuctionID: 1, SecondsRemaining: tt.seconds}, published[0].Payload)
		})
	}
}

func TestNotifyOutbid(t *testing.T) {
	service, _, users, sink := NewMock(t)

	users.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, Email: "b@example.com"}, nil)
	assert.NoError(t, service.NotifyOutbid(context.Background(), 1, 2, decimal.NewFromInt(200)))

	users.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
	assert.NoError(t, service.NotifyOutbid(context.Background(), 1, 3, decimal.NewFromInt(200)))

	users.EXPECT().FindByID(gomock.Any(), 4).Return(nil, errors.New("database error"))
	assert.Error(t, service.NotifyOutbid(context.Background(), 1, 4, decimal.NewFromInt(200)))

	assert.Empty(t, sink.Events())
}
