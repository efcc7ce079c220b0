package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/clients"
)

func TestWebhookSink_Publish(t *testing.T) {
	received := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var msg map[string]any
		require.NoError(t, json.Unmarshal(body, &msg))
		received <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, clients.NewHTTPClient(time.Second), 0)
	defer sink.Close()
	sink.Publish(context.Background(), domain.Event{
		AuctionID: 12,
		Type:      domain.EventAuctionSold,
		Payload: domain.AuctionSoldPayload{
			AuctionID:  12,
			WinnerName: "b@example.com",
			FinalPrice: decimal.RequireFromString("150.50"),
		},
	})

	msg := <-received
	assert.Equal(t, "auction:12", msg["room"])
	assert.Equal(t, "AUCTION_SOLD", msg["event"])
	payload := msg["payload"].(map[string]any)
	assert.Equal(t, "b@example.com", payload["winnerName"])
	assert.Equal(t, "150.5", payload["finalPrice"])
}

func TestWebhookSink_FailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, clients.NewHTTPClient(time.Second), 0)
	assert.NotPanics(t, func() {
		sink.Publish(context.Background(), domain.Event{AuctionID: 1, Type: domain.EventAuctionExpired})
	})

	srv.Close()
	assert.NotPanics(t, func() {
		sink.Publish(context.Background(), domain.Event{AuctionID: 1, Type: domain.EventAuctionExpired})
		sink.Close()
		sink.Close()
		sink.Publish(context.Background(), domain.Event{AuctionID: 1, Type: domain.EventAuctionExpired})
	})
}

func TestWebhookSink_PublishDoesNotWaitForDelivery(t *testing.T) {
	var (
		arrived = make(chan string, 3)
		release = make(chan struct{})
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		arrived <- string(msg.Event)
		<-release
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, clients.NewHTTPClient(10*time.Second), 1)
	sink.Publish(context.Background(), domain.Event{AuctionID: 1, Type: domain.EventNewBid})
	select {
	case event := <-arrived:
		assert.Equal(t, "NEW_BID", event)
	case <-time.After(5 * time.Second):
		t.Fatal("first event was not delivered")
	}

	// The broadcaster is stuck on the first event.
	published := make(chan struct{})
	go func() {
		sink.Publish(context.Background(), domain.Event{AuctionID: 1, Type: domain.EventAuctionSold})
		sink.Publish(context.Background(), domain.Event{AuctionID: 1, Type: domain.EventAuctionExpired})
		close(published)
	}()
	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow broadcaster")
	}

	close(release)
	sink.Close()
	close(arrived)
	var rest []string
	for event := range arrived {
		rest = append(rest, event)
	}
	assert.Equal(t, []string{"AUCTION_SOLD"}, rest, "queued event is sent, overflow is dropped")
}

func TestBatch_Flush(t *testing.T) {
	var batch Batch
	rec := &Recorder{}

	batch.Add(domain.Event{AuctionID: 1, Type: domain.EventNewBid})
	batch.Add(domain.Event{AuctionID: 1, Type: domain.EventAuctionSold})
	assert.Equal(t, 2, batch.Len())
	assert.Empty(t, rec.Events())

	batch.Flush(context.Background(), Multi{LogSink{}, rec})
	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventNewBid, events[0].Type)
	assert.Equal(t, domain.EventAuctionSold, events[1].Type)
	assert.Zero(t, batch.Len())

	batch.Flush(context.Background(), rec)
	assert.Len(t, rec.Events(), 2)
}

func TestRoom(t *testing.T) {
	assert.Equal(t, "auction:42", Room(42))
}
