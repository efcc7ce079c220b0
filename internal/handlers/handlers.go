package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/GlebRadaev/auctionhouse/docs"
	auctionhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/auctions"
	authhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/auth"
	userhandlers "github.com/GlebRadaev/auctionhouse/internal/handlers/users"
	"github.com/GlebRadaev/auctionhouse/internal/service"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

//go:generate mockgen -destination=mock_handlers.go -package=handlers . AuthHandler,AuctionHandler,UserHandler,Pinger

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AuctionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Bid(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
}

// Pinger reports whether the backing store is reachable. Nil means always healthy.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AuthHandler    AuthHandler
	AuctionHandler AuctionHandler
	UserHandler    UserHandler

	tokens auth.TokenValidator
	pinger Pinger
}

func New(s *service.Services, clock *wallclock.Policy, pinger Pinger) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		AuctionHandler: auctionhandlers.New(s.AuctionService, clock),
		UserHandler:    userhandlers.New(s.UserService, clock),
		tokens:         s.Tokens,
		pinger:         pinger,
	}
}

// Health godoc
//
//	@Summary	Liveness and database reachability
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	503	{object}	utils.Response
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			zap.L().Error("health check failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Get("/auctions", h.AuctionHandler.List)
		r.Get("/auctions/{id}", h.AuctionHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))
			r.Post("/auctions", h.AuctionHandler.Create)
			r.Post("/auctions/{id}/bid", h.AuctionHandler.Bid)
			r.Get("/users/me", h.UserHandler.Me)
		})
	})

	return r
}
