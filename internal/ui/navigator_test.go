package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vanchuyen/codctl/internal/domain"
)

// memStore is an in-memory domain.SessionStore for guard tests
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

func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{
		AccessToken: "t1",
		User:        &domain.User{ID: "u1", Role: role},
	}
}

func TestNavigator_Guard(t *testing.T) {
	protected := []string{
		"/shop/dashboard", "/shop/orders", "/shop/orders/new", "/shop/settlements",
		"/shop/reports", "/shop/profile",
		"/shipper/dashboard", "/shipper/deliveries", "/shipper/settlements", "/shipper/history",
		"/admin/dashboard", "/admin/shops", "/admin/shippers", "/admin/orders",
		"/admin/settlements", "/admin/reports",
	}

	t.Run("Without a session every protected path lands on login", func(t *testing.T) {
		nav := NewNavigator(&memStore{})
		for _, path := range protected {
			assert.Equal(t, PathLogin, nav.Navigate(path), path)
		}
	})

	t.Run("Wrong role lands on unauthorized, never on login", func(t *testing.T) {
		nav := NewNavigator(&memStore{session: sessionFor(domain.RoleShop)})
		for _, path := range protected {
			if path[:5] == "/shop" {
				continue
			}
			assert.Equal(t, PathUnauthorized, nav.Navigate(path), path)
		}
	})

	t.Run("Matching role passes through", func(t *testing.T) {
		nav := NewNavigator(&memStore{session: sessionFor(domain.RoleShipper)})
		assert.Equal(t, "/shipper/deliveries", nav.Navigate("/shipper/deliveries"))
		assert.Equal(t, "/shipper/deliveries", nav.Location())
	})

	t.Run("Unknown subpath inside an admitted subtree lands on the role dashboard", func(t *testing.T) {
		nav := NewNavigator(&memStore{session: sessionFor(domain.RoleShop)})
		assert.Equal(t, "/shop/dashboard", nav.Navigate("/shop/warehouse"))
	})

	t.Run("Unknown top-level path lands on 404", func(t *testing.T) {
		nav := NewNavigator(&memStore{session: sessionFor(domain.RoleShop)})
		assert.Equal(t, PathNotFound, nav.Navigate("/billing"))
	})

	t.Run("Root and empty path land on login", func(t *testing.T) {
		nav := NewNavigator(&memStore{session: sessionFor(domain.RoleShop)})
		assert.Equal(t, PathLogin, nav.Navigate("/"))
		assert.Equal(t, PathLogin, nav.Navigate(""))
	})

	t.Run("Public paths are reachable regardless of session", func(t *testing.T) {
		nav := NewNavigator(&memStore{})
		assert.Equal(t, PathLogin, nav.Navigate(PathLogin))
		assert.Equal(t, PathUnauthorized, nav.Navigate(PathUnauthorized))
		assert.Equal(t, PathNotFound, nav.Navigate(PathNotFound))
	})
}

func TestNavigator_ForceLogin(t *testing.T) {
	nav := NewNavigator(&memStore{session: sessionFor(domain.RoleAdmin)})
	nav.Navigate("/admin/settlements")

	nav.ForceLogin()
	assert.Equal(t, PathLogin, nav.Location())
}

func TestHome(t *testing.T) {
	assert.Equal(t, "/shop/dashboard", Home(domain.RoleShop))
	assert.Equal(t, "/shipper/dashboard", Home(domain.RoleShipper))
	assert.Equal(t, "/admin/dashboard", Home(domain.RoleAdmin))
}
