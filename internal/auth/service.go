// Package auth implements the mock authentication layer. There is no
// backend: one demo credential pair is accepted, the token is a fixed
// string, and the password operations are logging stubs. All of that
// is deliberate placeholder behavior.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Veraticus/faktura/internal/common"
	"github.com/Veraticus/faktura/internal/invoice"
	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/store"
)

// MockToken is the fixed session token issued on every successful
// login or registration.
const MockToken = "mock-jwt-token"

// The accepted demo credentials: the full demo account, plus a short
// alias for quick manual testing.
const (
	demoEmail    = "demo@example.com"
	demoPassword = "password"
	demoAlias    = "demo"
)

// Service owns the in-memory session state. It is the only mutator of
// that state; there is no package-level singleton.
type Service struct {
	store store.Store
	token string
	user  *model.User
}

// NewService creates an auth service on top of a store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Init loads the persisted session into memory. A missing token or
// user record leaves the session unauthenticated; read failures are
// logged and treated the same way.
func (s *Service) Init(ctx context.Context) {
	token, tokenOK, err := s.store.Get(ctx, store.KeyAuthToken)
	if err != nil {
		slog.Error("failed to load auth token", "error", err)
		return
	}

	userData, userOK, err := s.store.Get(ctx, store.KeyUserData)
	if err != nil {
		slog.Error("failed to load user data", "error", err)
		return
	}

	if !tokenOK || !userOK {
		return
	}

	var user model.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		slog.Error("failed to decode stored user, staying logged out", "error", err)
		return
	}

	s.token = token
	s.user = &user
	slog.Debug("restored session", "email", user.Email)
}

// Login validates the credentials against the demo account. On success
// the fixed token and the demo user are persisted and loaded into
// memory; on failure nothing changes and ErrInvalidCredentials is
// returned.
func (s *Service) Login(ctx context.Context, email, password string) (model.User, error) {
	validDemo := email == demoEmail && password == demoPassword
	validAlias := email == demoAlias && password == demoAlias
	if !validDemo && !validAlias {
		return model.User{}, common.ErrInvalidCredentials
	}

	user := invoice.MockUser()
	if err := s.persistSession(ctx, MockToken, user); err != nil {
		return model.User{}, err
	}

	slog.Info("logged in", "email", user.Email)
	return user, nil
}

// Logout removes both persisted session keys and clears the in-memory
// state. Logging out while logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.MultiRemove(ctx, []string{store.KeyAuthToken, store.KeyUserData}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.token = ""
	s.user = nil
	return nil
}

// IsAuthenticated reports whether both the token and the user record
// are present in memory.
func (s *Service) IsAuthenticated() bool {
	return s.token != "" && s.user != nil
}

// CurrentUser returns the logged-in user, or nil.
func (s *Service) CurrentUser() *model.User {
	return s.user
}

// Token returns the session token, or "" when logged out.
func (s *Service) Token() string {
	return s.token
}

// RegisterInput is the data collected by the registration screen.
// Validation (required fields, email shape) happens at that boundary,
// not here.
type RegisterInput struct {
	Email    string
	Name     string
	Company  string
	Password string
}

// Register always succeeds: it synthesizes an id, persists the new
// user as if they had logged in, and returns the record.
func (s *Service) Register(ctx context.Context, input RegisterInput) (model.User, error) {
	user := model.User{
		ID:      uuid.NewString(),
		Email:   input.Email,
		Name:    input.Name,
		Company: input.Company,
		Role:    model.RoleUser,
	}

	if err := s.persistSession(ctx, MockToken, user); err != nil {
		return model.User{}, err
	}

	slog.Info("registered user", "email", user.Email, "id", user.ID)
	return user, nil
}

// ResetPassword pretends to send a reset email. Placeholder behavior.
func (s *Service) ResetPassword(_ context.Context, email string) error {
	slog.Info("password reset requested", "email", email)
	return nil
}

// ChangePassword pretends to change the password for the current user.
// It only requires an authenticated session; placeholder behavior.
func (s *Service) ChangePassword(_ context.Context, _, _ string) error {
	if !s.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	slog.Info("password changed", "email", s.user.Email)
	return nil
}

func (s *Service) persistSession(ctx context.Context, token string, user model.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	if err := s.store.Set(ctx, store.KeyAuthToken, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyUserData, string(userData)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	s.token = token
	s.user = &user
	return nil
}
