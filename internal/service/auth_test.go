package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
	"go.uber.org/zap"
)

// memStore is an in-memory domain.SessionStore for service tests
type memStore struct {
	session *domain.Session
}

func (m *memStore) Load() (*domain.Session, error) {
	if m.session == nil {
		return nil, domain.ErrNoSession
	}
	return m.session, nil
}

func (m *memStore) Save(s *domain.Session) error {
	m.session = s
	return nil
}

func (m *memStore) Clear() error {
	m.session = nil
	return nil
}

func newTestClient(serverURL string, store domain.SessionStore) *api.Client {
	return api.NewClient(serverURL, time.Second, store, zap.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success persists the session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "shop@test.com", body["email"])
			assert.Equal(t, "secret", body["password"])

			json.NewEncoder(w).Encode(domain.Session{
				AccessToken:  "t1",
				RefreshToken: "r1",
				User:         &domain.User{ID: "u1", Name: "Shop Một", Role: domain.RoleShop},
			})
		}))
		defer server.Close()

		store := &memStore{}
		svc := NewAuthService(newTestClient(server.URL, store), store)

		session, err := svc.Login(ctx, "shop@test.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "t1", session.AccessToken)

		require.NotNil(t, store.session, "session should be persisted")
		assert.Equal(t, "t1", store.session.AccessToken)
		assert.Equal(t, "r1", store.session.RefreshToken)
		assert.Equal(t, domain.RoleShop, store.session.User.Role)
	})

	t.Run("Wrong credentials map to ErrInvalidCredentials and persist nothing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		}))
		defer server.Close()

		store := &memStore{}
		svc := NewAuthService(newTestClient(server.URL, store), store)

		_, err := svc.Login(ctx, "shop@test.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, store.session)
	})

	t.Run("Empty credentials are rejected before any request", func(t *testing.T) {
		store := &memStore{}
		svc := NewAuthService(newTestClient("http://127.0.0.1:0", store), store)

		_, err := svc.Login(ctx, "", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Response without a token is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		store := &memStore{}
		svc := NewAuthService(newTestClient(server.URL, store), store)

		_, err := svc.Login(ctx, "shop@test.com", "secret")
		assert.Error(t, err)
		assert.Nil(t, store.session)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success persists the session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/register", r.URL.Path)
			json.NewEncoder(w).Encode(domain.Session{
				AccessToken: "t1",
				User:        &domain.User{ID: "u2", Name: "Shipper Hai", Role: domain.RoleShipper},
			})
		}))
		defer server.Close()

		store := &memStore{}
		svc := NewAuthService(newTestClient(server.URL, store), store)

		session, err := svc.Register(ctx, domain.RegisterRequest{
			Email:    "shipper@test.com",
			Password: "secret",
			Name:     "Shipper Hai",
			Role:     domain.RoleShipper,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleShipper, session.User.Role)
		assert.NotNil(t, store.session)
	})

	t.Run("Admin self-registration is rejected locally", func(t *testing.T) {
		store := &memStore{}
		svc := NewAuthService(newTestClient("http://127.0.0.1:0", store), store)

		_, err := svc.Register(ctx, domain.RegisterRequest{
			Email:    "admin@test.com",
			Password: "secret",
			Name:     "Admin",
			Role:     domain.RoleAdmin,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears the local session even when the backend is unreachable", func(t *testing.T) {
		store := &memStore{session: &domain.Session{
			AccessToken: "t1",
			User:        &domain.User{ID: "u1", Role: domain.RoleShop},
		}}
		svc := NewAuthService(newTestClient("http://127.0.0.1:0", store), store)

		require.NoError(t, svc.Logout(ctx))
		assert.Nil(t, store.session)
	})

	t.Run("Notifies the backend on a best-effort basis", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/logout" {
				called = true
			}
		}))
		defer server.Close()

		store := &memStore{session: &domain.Session{
			AccessToken: "t1",
			User:        &domain.User{ID: "u1", Role: domain.RoleShop},
		}}
		svc := NewAuthService(newTestClient(server.URL, store), store)

		require.NoError(t, svc.Logout(ctx))
		assert.True(t, called)
		assert.Nil(t, store.session)
	})
}
