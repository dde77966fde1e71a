// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/utils"
)

// resetRequest starts the two-phase password reset.
type resetRequest struct {
	Email string `json:"email"`
}

// resetConfirmRequest finishes the reset. UID is the encoded account
// identifier from the emailed link, Token the reset token.
type resetConfirmRequest struct {
	UID             string `json:"uid"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// neutralResetResponse is rendered for every reset request regardless of
// whether the email is registered.
var neutralResetResponse = map[string]string{
	"detail": "If the email address you entered is registered, you will receive password reset instructions shortly.",
}

func (h *Handler) passwordResetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request resetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if request.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	// the response is identical for registered and unknown emails
	if _, err := h.services.UserService.StartPasswordReset(ctx, request.Email); err != nil {
		log.Err(err).Msg("unexpected error occurred during password reset initiation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, neutralResetResponse, http.StatusOK)
}

func (h *Handler) passwordResetConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request resetConfirmRequest
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

	// every identification or verification failure collapses into one
	// generic rejection so the link cannot be probed piecewise
	accountID, err := crypto.DecodeAccountID(request.UID)
	if err != nil {
		log.Err(err).Msg("malformed reset identifier")
		h.rejectResetLink(w)
		return
	}

	account, err := h.services.UserService.AccountByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("reset link account lookup failed")
		h.rejectResetLink(w)
		return
	}

	if err := h.tokenCodec.Verify(account, request.Token); err != nil {
		log.Err(err).Int64("id", accountID).Msg("reset token rejected")
		h.rejectResetLink(w)
		return
	}

	if err := h.services.UserService.FinishPasswordReset(ctx, accountID, request.Password); err != nil {
		log.Err(err).Int64("id", accountID).Msg("unexpected error occurred during password reset")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", accountID).Msg("password reset completed")

	utils.WriteJSON(w, map[string]string{"detail": "Password has been reset."}, http.StatusOK)
}

func (h *Handler) rejectResetLink(w http.ResponseWriter) {
	http.Error(w, "The password reset link is invalid or has expired.", http.StatusBadRequest)
}
