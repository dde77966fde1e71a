package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/service"
	"github.com/akorchagin/smart-water/internal/store"
	"github.com/akorchagin/smart-water/internal/utils"
	"github.com/akorchagin/smart-water/models"
)

// registerRequest is the registration payload: the account and profile
// fields plus the password confirmation checked at this layer.
type registerRequest struct {
	models.Registration
	PasswordConfirm string `json:"password_confirm"`
}

// loginRequest carries email-based login credentials.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
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

	account, err := h.services.UserService.Register(ctx, request.Registration)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			http.Error(w, "email already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", account.AccountID).Msg("account registered")

	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.UserService.GetUserForLogin(ctx, request.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrAccountNotFound):
			log.Err(err).Msg("no account was found")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err := utils.CheckPassword(account.PasswordHash, request.Password); err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("wrong password")
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}

	if !account.IsActive {
		log.Error().Int64("id", account.AccountID).Msg("inactive account login attempt")
		http.Error(w, "account is disabled", http.StatusUnauthorized)
		return
	}

	if err := h.services.UserService.RecordLogin(ctx, account.AccountID); err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("recording login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, err := h.services.UserService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", account.AccountID).Msg("account successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
