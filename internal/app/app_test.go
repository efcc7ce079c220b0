package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/auctionhouse/internal/config"
	"github.com/GlebRadaev/auctionhouse/internal/dto"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func memoryConfig() *config.Config {
	return &config.Config{
		Address:        "localhost:0",
		Database:       config.MemoryDatabase,
		LogLvl:         "info",
		JWTSecret:      "secret",
		TimeZone:       "Asia/Kolkata",
		JobConcurrency: 2,
		JobPoll:        10 * time.Millisecond,
		SweepInterval:  time.Minute,
		InitialBalance: "1000",
	}
}

func (s *ApplicationSuite) TestBuild_InvalidConfig() {
	cfg := memoryConfig()
	cfg.TimeZone = "Mars/Olympus_Mons"
	s.ErrorContains(s.app.build(context.Background(), cfg), "can't load time zone")

	cfg = memoryConfig()
	cfg.InitialBalance = "-5"
	s.ErrorContains(s.app.build(context.Background(), cfg), "invalid initial balance")

	cfg = memoryConfig()
	cfg.Database = "postgres://localhost:notaport/auction"
	s.ErrorContains(s.app.build(context.Background(), cfg), "can't build pgx pool")
}

func (s *ApplicationSuite) TestBuild_MemoryRoundTrip() {
	s.Require().NoError(s.app.build(context.Background(), memoryConfig()))
	s.Nil(s.app.pool)

	router := chi.NewRouter()
	s.app.api.InitRoutes(router)

	do := func(method, url, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = do(http.MethodPost, "/api/auth/register", "", `{"email":"Alice@Example.com","password":"s3cretpass"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var registered dto.AuthResponseDTO
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&registered))
	s.Equal("alice@example.com", registered.User.Email)
	s.Require().NotNil(registered.User.Balance)
	s.Equal("1000", registered.User.Balance.String())

	endsAt := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	rec = do(http.MethodPost, "/api/auctions", registered.Token,
		fmt.Sprintf(`{"title":"Lamp","startingPrice":"10","endsAt":%q}`, endsAt))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created dto.AuctionResponseDTO
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&created))
	s.Equal("ACTIVE", created.Data.Status)

	url := fmt.Sprintf("/api/auctions/%d/bid", created.Data.ID)
	rec = do(http.MethodPost, url, registered.Token, `{"amount":"25"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(http.MethodPost, url, registered.Token, `{"amount":"20"}`)
	s.Equal(http.StatusConflict, rec.Code)

	rec = do(http.MethodGet, "/api/users/me", registered.Token, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var profile dto.ProfileResponseDTO
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&profile))
	s.Equal("25", profile.Reserved.String())
	s.Equal("975", profile.Available.String())
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_ClosesStoreAfterShutdown() {
	s.Require().NoError(s.app.build(context.Background(), memoryConfig()))
	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))
	s.app.startJobRunner(ctx)

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(step string) {
		mu.Lock()
		order = append(order, step)
		mu.Unlock()
	}
	// A request still draining while the server shuts down.
	s.app.wg.Add(1)
	go func() {
		defer s.app.wg.Done()
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		record("drained")
	}()
	s.app.onClose(func() { record("store closed") })

	cancel()
	s.Require().NoError(s.app.Wait(ctx, cancel))
	s.Equal([]string{"drained", "store closed"}, order)
}

func (s *ApplicationSuite) TestClose_ReverseOrderOnce() {
	var order []int
	s.app.onClose(func() { order = append(order, 1) })
	s.app.onClose(func() { order = append(order, 2) })

	s.app.Close()
	s.app.Close()
	s.Equal([]int{2, 1}, order)
}
