// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"time"

	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/service"
	"github.com/akorchagin/smart-water/models"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	registerFn            func(ctx context.Context, registration models.Registration) (models.Account, error)
	getUserForLoginFn     func(ctx context.Context, email string) (models.Account, error)
	accountByIDFn         func(ctx context.Context, accountID int64) (models.Account, error)
	startPasswordResetFn  func(ctx context.Context, email string) (models.ResetTicket, error)
	finishPasswordResetFn func(ctx context.Context, accountID int64, newPassword string) error
	setPasswordFn         func(ctx context.Context, accountID int64, newPassword string) error
	recordLoginFn         func(ctx context.Context, accountID int64) error
	updateProfileFn       func(ctx context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error)
	createTokenFn         func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn          func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockUserService) Register(ctx context.Context, registration models.Registration) (models.Account, error) {
	return m.registerFn(ctx, registration)
}

func (m *mockUserService) GetUserForLogin(ctx context.Context, email string) (models.Account, error) {
	return m.getUserForLoginFn(ctx, email)
}

func (m *mockUserService) AccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return m.accountByIDFn(ctx, accountID)
}

func (m *mockUserService) StartPasswordReset(ctx context.Context, email string) (models.ResetTicket, error) {
	return m.startPasswordResetFn(ctx, email)
}

func (m *mockUserService) FinishPasswordReset(ctx context.Context, accountID int64, newPassword string) error {
	return m.finishPasswordResetFn(ctx, accountID, newPassword)
}

func (m *mockUserService) SetPassword(ctx context.Context, accountID int64, newPassword string) error {
	return m.setPasswordFn(ctx, accountID, newPassword)
}

func (m *mockUserService) RecordLogin(ctx context.Context, accountID int64) error {
	return m.recordLoginFn(ctx, accountID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error) {
	return m.updateProfileFn(ctx, accountID, update)
}

func (m *mockUserService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return m.createTokenFn(ctx, account)
}

func (m *mockUserService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testResetKey = "test-reset-key"

func newTestHandler(userService service.UserService) *Handler {
	return NewHandler(
		&service.Services{UserService: userService},
		crypto.NewTokenCodec(testResetKey, 24*time.Hour),
		logger.Nop(),
	)
}
