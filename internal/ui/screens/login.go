package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// LoginScreen is the public entry screen: login and register. Failures
// render inline and never move the user away; the session is only
// touched on success.
type LoginScreen struct {
	auth domain.AuthService
}

// NewLoginScreen creates the login screen
func NewLoginScreen(auth domain.AuthService) *LoginScreen {
	return &LoginScreen{auth: auth}
}

func (s *LoginScreen) Title() string { return "Đăng nhập" }

func (s *LoginScreen) Render(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "COD Express - Quản lý thu hộ & đối soát")
	fmt.Fprintln(w, "  login <email> <mật khẩu>   đăng nhập")
	fmt.Fprintln(w, "  register                   đăng ký tài khoản SHOP/SHIPPER")
	return nil
}

func (s *LoginScreen) Handle(ctx context.Context, args []string, in *bufio.Reader, w io.Writer) (string, bool, error) {
	switch args[0] {
	case "login":
		email, password := "", ""
		if len(args) >= 3 {
			email, password = args[1], args[2]
		} else {
			email = prompt(in, w, "Email")
			password = prompt(in, w, "Mật khẩu")
		}

		session, err := s.auth.Login(ctx, email, password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return "", true, errors.New("email hoặc mật khẩu không đúng")
			}
			if errors.Is(err, domain.ErrInvalidInput) {
				return "", true, errors.New("vui lòng nhập email và mật khẩu")
			}
			return "", true, err
		}

		fmt.Fprintf(w, "Xin chào, %s!\n", session.User.Name)
		return ui.Home(session.User.Role), true, nil

	case "register":
		req := domain.RegisterRequest{
			Name:     prompt(in, w, "Tên"),
			Email:    prompt(in, w, "Email"),
			Password: prompt(in, w, "Mật khẩu"),
			Phone:    prompt(in, w, "Số điện thoại"),
			Role:     domain.Role(strings.ToUpper(prompt(in, w, "Vai trò (SHOP/SHIPPER)"))),
		}

		session, err := s.auth.Register(ctx, req)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return "", true, errors.New("thông tin đăng ký không hợp lệ")
			}
			return "", true, err
		}

		fmt.Fprintf(w, "Đăng ký thành công. Xin chào, %s!\n", session.User.Name)
		return ui.Home(session.User.Role), true, nil
	}

	return "", false, nil
}

// StaticScreen renders a fixed message; used for the unauthorized and
// not-found routes
type StaticScreen struct {
	title   string
	message string
}

// NewUnauthorizedScreen creates the 403 screen
func NewUnauthorizedScreen() *StaticScreen {
	return &StaticScreen{
		title:   "403 - Unauthorized",
		message: "Bạn không có quyền truy cập trang này. Gõ 'logout' để quay lại đăng nhập.",
	}
}

// NewNotFoundScreen creates the 404 screen
func NewNotFoundScreen() *StaticScreen {
	return &StaticScreen{
		title:   "404 - Not Found",
		message: "Trang bạn tìm kiếm không tồn tại.",
	}
}

func (s *StaticScreen) Title() string { return s.title }

func (s *StaticScreen) Render(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, s.message)
	return nil
}

func (s *StaticScreen) Handle(context.Context, []string, *bufio.Reader, io.Writer) (string, bool, error) {
	return "", false, nil
}
