package ui

import (
	"errors"
	"strings"
	"sync"

	"github.com/vanchuyen/codctl/internal/domain"
)

// Well-known paths outside the role subtrees
const (
	PathLogin        = "/login"
	PathUnauthorized = "/unauthorized"
	PathNotFound     = "/404"
)

// roleRoutes declares the allowed-role set per route subtree
var roleRoutes = []struct {
	prefix string
	role   domain.Role
}{
	{"/shop", domain.RoleShop},
	{"/shipper", domain.RoleShipper},
	{"/admin", domain.RoleAdmin},
}

// screensByRole is the set of known screens under each role subtree;
// an unknown subpath in an admitted subtree lands on the dashboard,
// matching the role-local catch-all of the route table
var screensByRole = map[domain.Role][]string{
	domain.RoleShop:    {"dashboard", "orders", "orders/new", "settlements", "reports", "profile"},
	domain.RoleShipper: {"dashboard", "deliveries", "settlements", "history"},
	domain.RoleAdmin:   {"dashboard", "shops", "shippers", "orders", "settlements", "reports"},
}

// Navigator evaluates the route guard per navigation and tracks the
// current location. Guard decisions depend only on the stored session:
// no session redirects to login, a role outside the subtree's allowed
// set redirects to unauthorized, and malformed session data counts as
// absent (the store purges it).
type Navigator struct {
	sessions domain.SessionStore

	mu       sync.Mutex
	location string
}

// NewNavigator creates a navigator starting at the login screen
func NewNavigator(sessions domain.SessionStore) *Navigator {
	return &Navigator{sessions: sessions, location: PathLogin}
}

// Navigate applies the guard to the requested path and moves to the
// resulting location, which it returns
func (n *Navigator) Navigate(path string) string {
	resolved := n.resolve(path)

	n.mu.Lock()
	n.location = resolved
	n.mu.Unlock()

	return resolved
}

// Location returns the current location
func (n *Navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

// ForceLogin jumps straight to the login screen; used by the API
// client's auth-failure hook after the session has been invalidated
func (n *Navigator) ForceLogin() {
	n.mu.Lock()
	n.location = PathLogin
	n.mu.Unlock()
}

// Home returns the dashboard path for a role
func Home(role domain.Role) string {
	return "/" + strings.ToLower(string(role)) + "/dashboard"
}

func (n *Navigator) resolve(path string) string {
	switch path {
	case "", "/":
		return PathLogin
	case PathLogin, PathUnauthorized, PathNotFound:
		return path
	}

	for _, route := range roleRoutes {
		if path != route.prefix && !strings.HasPrefix(path, route.prefix+"/") {
			continue
		}

		session, err := n.sessions.Load()
		if err != nil {
			if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrSessionExpired) {
				return PathLogin
			}
			return PathLogin
		}

		if session.User.Role != route.role {
			return PathUnauthorized
		}

		sub := strings.TrimPrefix(strings.TrimPrefix(path, route.prefix), "/")
		for _, screen := range screensByRole[route.role] {
			if sub == screen {
				return path
			}
		}
		return Home(route.role)
	}

	return PathNotFound
}
