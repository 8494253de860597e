package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
	"github.com/vanchuyen/codctl/internal/ui/screens"
	"go.uber.org/zap"
)

// Shell is the role layout: it renders the current screen, exposes the
// role menu and the notification dropdown, and owns the notification
// poller for as long as a session is active. Every failure surfaces
// once as a message and leaves the shell usable.
type Shell struct {
	sessions      domain.SessionStore
	auth          domain.AuthService
	notifications domain.NotificationService
	nav           *ui.Navigator
	registry      *screens.Registry
	poller        *ui.Poller
	logger        *zap.Logger
	in            *bufio.Reader
	out           io.Writer
	now           func() time.Time

	mu     sync.Mutex
	unread int
	latest []domain.Notification
}

// menusByRole mirrors the navigation menu of the original layout
var menusByRole = map[domain.Role][]string{
	domain.RoleShop:    {"dashboard", "orders", "settlements", "reports", "profile"},
	domain.RoleShipper: {"dashboard", "deliveries", "settlements", "history"},
	domain.RoleAdmin:   {"dashboard", "shops", "shippers", "orders", "settlements", "reports"},
}

// NewShell creates the shell
func NewShell(
	sessions domain.SessionStore,
	auth domain.AuthService,
	notifications domain.NotificationService,
	nav *ui.Navigator,
	registry *screens.Registry,
	pollInterval time.Duration,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Shell {
	s := &Shell{
		sessions:      sessions,
		auth:          auth,
		notifications: notifications,
		nav:           nav,
		registry:      registry,
		logger:        logger,
		in:            bufio.NewReader(in),
		out:           out,
		now:           time.Now,
	}
	s.poller = ui.NewPoller(notifications, pollInterval, s.onNotifications, logger)
	return s
}

// Run drives the interactive loop until the context is cancelled or
// input ends
func (s *Shell) Run(ctx context.Context) error {
	// Resume a persisted session straight onto the role dashboard
	if session, err := s.sessions.Load(); err == nil {
		s.nav.Navigate(ui.Home(session.User.Role))
	} else {
		s.nav.Navigate(ui.PathLogin)
	}
	s.syncPoller(ctx)
	defer s.poller.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.renderLocation(ctx)

		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil {
			return nil
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if quit := s.dispatch(ctx, args); quit {
			return nil
		}
		s.syncPoller(ctx)
	}
}

// dispatch runs one command; returns true when the shell should exit
func (s *Shell) dispatch(ctx context.Context, args []string) bool {
	switch args[0] {
	case "exit", "quit":
		return true

	case "help":
		s.printHelp()
		return false

	case "logout":
		s.logout(ctx)
		return false

	case "goto":
		if len(args) > 1 {
			s.nav.Navigate(args[1])
		}
		return false

	case "whoami":
		user, err := s.auth.CurrentUser(ctx)
		if err != nil {
			s.toast(err)
			return false
		}
		fmt.Fprintf(s.out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
		return false

	case "noti":
		s.renderNotifications()
		return false

	case "read":
		s.markRead(ctx, args)
		return false

	case "read-all":
		if err := s.notifications.MarkAllRead(ctx); err != nil {
			s.toast(err)
			return false
		}
		s.poller.Refresh(ctx)
		return false
	}

	// Role menu shortcuts
	if session, err := s.sessions.Load(); err == nil {
		prefix := "/" + strings.ToLower(string(session.User.Role))
		for _, item := range menusByRole[session.User.Role] {
			if args[0] == item {
				s.nav.Navigate(prefix + "/" + item)
				return false
			}
		}
	}

	// Everything else belongs to the current screen
	if screen, ok := s.registry.Lookup(s.nav.Location()); ok {
		next, handled, err := screen.Handle(ctx, args, s.in, s.out)
		if err != nil {
			s.toast(err)
			return false
		}
		if !handled {
			fmt.Fprintf(s.out, "Lệnh không hợp lệ: %s (gõ 'help')\n", args[0])
			return false
		}
		if next != "" {
			s.nav.Navigate(next)
		}
	}
	return false
}

func (s *Shell) renderLocation(ctx context.Context) {
	location := s.nav.Location()
	screen, ok := s.registry.Lookup(location)
	if !ok {
		screen, _ = s.registry.Lookup(ui.PathNotFound)
	}

	fmt.Fprintf(s.out, "\n── %s ──", screen.Title())
	if unread := s.unreadCount(); unread > 0 {
		fmt.Fprintf(s.out, " [%d thông báo chưa đọc]", unread)
	}
	fmt.Fprintln(s.out)

	if err := screen.Render(ctx, s.out); err != nil {
		// A failed fetch leaves an empty screen, never a dead shell
		s.toast(err)
	}
}

func (s *Shell) logout(ctx context.Context) {
	s.poller.Stop()
	if err := s.auth.Logout(ctx); err != nil {
		s.toast(err)
	}
	s.nav.Navigate(ui.PathLogin)
	fmt.Fprintln(s.out, "Đã đăng xuất.")
}

// syncPoller keeps the poller mounted exactly while a session is
// active: started after login or resume, stopped after logout or a
// forced invalidation
func (s *Shell) syncPoller(ctx context.Context) {
	if _, err := s.sessions.Load(); err == nil {
		s.poller.Start(ctx)
		return
	}
	s.poller.Stop()
}

func (s *Shell) onNotifications(unread int, items []domain.Notification) {
	s.mu.Lock()
	s.unread = unread
	s.latest = items
	s.mu.Unlock()
}

func (s *Shell) unreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

func (s *Shell) renderNotifications() {
	s.mu.Lock()
	items := make([]domain.Notification, len(s.latest))
	copy(items, s.latest)
	s.mu.Unlock()

	if len(items) == 0 {
		fmt.Fprintln(s.out, "(không có thông báo)")
		return
	}
	for _, n := range items {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s [%d] %s - %s (%s)\n", marker, n.ID, n.Title, n.Content, ui.RelativeTime(n.CreatedAt, s.now()))
	}
	fmt.Fprintln(s.out, "  read <id> | read-all")
}

func (s *Shell) markRead(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.toast(errors.New("cách dùng: read <id>"))
		return
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		s.toast(errors.New("id thông báo không hợp lệ"))
		return
	}
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		s.toast(err)
		return
	}
	// Refetch instead of mutating locally so the badge always reflects
	// the server state
	s.poller.Refresh(ctx)
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Lệnh chung: noti, read <id>, read-all, whoami, goto <đường dẫn>, logout, help, exit")
	if session, err := s.sessions.Load(); err == nil {
		fmt.Fprintf(s.out, "Menu %s: %s\n", session.User.Role, strings.Join(menusByRole[session.User.Role], ", "))
	} else {
		fmt.Fprintln(s.out, "Chưa đăng nhập: login <email> <mật khẩu>, register")
	}
}

// toast prints a transient error message with a fallback when the
// backend supplied none
func (s *Shell) toast(err error) {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "Có lỗi xảy ra, vui lòng thử lại"
	}
	fmt.Fprintf(s.out, "Lỗi: %s\n", msg)
}
