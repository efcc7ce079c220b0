package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/auctionhouse/internal/dto"
	"github.com/GlebRadaev/auctionhouse/internal/service/userservice"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
	"github.com/GlebRadaev/auctionhouse/pkg/utils"
	"github.com/GlebRadaev/auctionhouse/pkg/wallclock"
)

type Service interface {
	Profile(ctx context.Context, userID int) (*userservice.Profile, error)
}

type UserHandler struct {
	userService Service
	clock       *wallclock.Policy
}

func New(userService Service, clock *wallclock.Policy) *UserHandler {
	return &UserHandler{
		userService: userService,
		clock:       clock,
	}
}

// Me godoc
//
//	@Summary		Current user profile
//	@Description	Balance, reserved funds and won auctions of the authenticated user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.userService.Profile(r.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile.User, profile.WonAuctions, h.clock))
}
