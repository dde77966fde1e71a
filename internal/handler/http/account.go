package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/service"
	"github.com/akorchagin/smart-water/internal/store"
	"github.com/akorchagin/smart-water/internal/utils"
	"github.com/akorchagin/smart-water/models"
)

// changePasswordRequest carries an authenticated password change. The current
// password is re-verified before the new one is accepted.
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	account, err := h.services.UserService.AccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("account lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.UserService.UpdateProfile(ctx, accountID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProfileNotFound):
			log.Err(err).Int64("id", accountID).Msg("profile not found")
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", accountID).Msg("unexpected error occurred during profile update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := validateNewPassword(request.Password, request.PasswordConfirm); err != nil {
		log.Err(err).Msg("password rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.services.UserService.AccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("account lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := utils.CheckPassword(account.PasswordHash, request.CurrentPassword); err != nil {
		log.Err(err).Int64("id", accountID).Msg("wrong current password")
		http.Error(w, "current password is incorrect", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.SetPassword(ctx, accountID, request.Password); err != nil {
		log.Err(err).Int64("id", accountID).Msg("unexpected error occurred during password change")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", accountID).Msg("password changed")

	utils.WriteJSON(w, map[string]string{"detail": "Password has been changed."}, http.StatusOK)
}
