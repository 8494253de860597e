package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
)

// AuthService implements domain.AuthService. Login and register
// persist the returned session; logout clears local state first so
// the user is logged out even when the network call fails.
type AuthService struct {
	client   *api.Client
	sessions domain.SessionStore
}

// NewAuthService creates a new AuthService
func NewAuthService(client *api.Client, sessions domain.SessionStore) *AuthService {
	return &AuthService{client: client, sessions: sessions}
}

// Login authenticates and persists the session on success. A 401 from
// the login endpoint maps to domain.ErrInvalidCredentials and leaves
// any stored session untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	var session domain.Session
	body := map[string]string{"email": email, "password": password}
	if err := s.client.Post(ctx, "/auth/login", body, &session); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: login failed: %w", err)
	}

	if session.AccessToken == "" || session.User == nil {
		return nil, fmt.Errorf("auth service: login response missing token or user")
	}

	if err := s.sessions.Save(&session); err != nil {
		return nil, fmt.Errorf("auth service: failed to persist session: %w", err)
	}
	return &session, nil
}

// Register creates a SHOP or SHIPPER account and persists the session
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Role != domain.RoleShop && req.Role != domain.RoleShipper {
		return nil, domain.ErrInvalidInput
	}

	var session domain.Session
	if err := s.client.Post(ctx, "/auth/register", req, &session); err != nil {
		return nil, fmt.Errorf("auth service: register failed: %w", err)
	}

	if session.AccessToken == "" || session.User == nil {
		return nil, fmt.Errorf("auth service: register response missing token or user")
	}

	if err := s.sessions.Save(&session); err != nil {
		return nil, fmt.Errorf("auth service: failed to persist session: %w", err)
	}
	return &session, nil
}

// Logout clears the local session first, then notifies the backend on
// a best-effort basis
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("auth service: failed to clear session: %w", err)
	}
	// The backend call may fail if the token already expired; the user
	// is logged out locally either way
	_ = s.client.Post(ctx, "/auth/logout", nil, nil)
	return nil
}

// CurrentUser fetches the authenticated profile
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, fmt.Errorf("auth service: failed to fetch current user: %w", err)
	}
	return &user, nil
}

// Refresh exchanges the refresh token for a new access token and
// persists the updated session
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	body := map[string]string{"refreshToken": refreshToken}
	if err := s.client.Post(ctx, "/auth/refresh", body, &resp); err != nil {
		return "", fmt.Errorf("auth service: refresh failed: %w", err)
	}

	if session, err := s.sessions.Load(); err == nil {
		session.AccessToken = resp.AccessToken
		if err := s.sessions.Save(session); err != nil {
			return "", fmt.Errorf("auth service: failed to persist refreshed session: %w", err)
		}
	}
	return resp.AccessToken, nil
}
