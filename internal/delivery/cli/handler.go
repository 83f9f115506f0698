// Package cli renders the application screens in a terminal. It is the view
// and route layer: it consumes the session state to decide which screen to
// show and redirects between public and protected routes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/linguago/linguago/internal/domain/entities"
	"github.com/linguago/linguago/internal/session"
)

// AuthService is the slice of the auth/session manager the screens use.
type AuthService interface {
	Login(ctx context.Context, creds entities.Credentials) (*entities.User, error)
	Register(ctx context.Context, data entities.RegisterData) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID int64, fields entities.UserPatch) (*entities.User, error)
	UpdateProgress(ctx context.Context, userID int64, update entities.ProgressUpdate) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	DeleteAccount(ctx context.Context, userID int64) error
}

// CourseCatalog is the slice of the course repository the screens use.
type CourseCatalog interface {
	GetByLanguage(lang entities.Language) (*entities.Course, error)
	GetAll() []*entities.Course
}

// errQuit unwinds a screen when the input stream ends.
var errQuit = errors.New("quit")

type Handler struct {
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
	session *session.Session
	auth    AuthService
	courses CourseCatalog
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	sess *session.Session,
	auth AuthService,
	courses CourseCatalog,
) *Handler {
	return &Handler{
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		session: sess,
		auth:    auth,
		courses: courses,
	}
}

// Run initializes the session and drives the screen loop until the user
// quits or the context is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("cli handler started")
	defer h.logger.Info("cli handler stopped")

	h.printf("%s\n", msgAppBanner)
	h.session.Init(ctx)

	current := h.defaultRoute()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		current = h.gate(current)

		next, err := h.show(ctx, current)
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		if next == routeQuit {
			return nil
		}
		current = next
	}
}

func (h *Handler) show(ctx context.Context, r route) (route, error) {
	switch r.name {
	case routeLogin.name:
		return h.loginScreen(ctx)
	case routeRegister.name:
		return h.registerScreen(ctx)
	case routeForgotPassword.name:
		return h.forgotPasswordScreen(ctx)
	case routeDashboard.name:
		return h.dashboardScreen(ctx)
	case routeProfile.name:
		return h.profileScreen(ctx)
	case routeCourse("").name:
		return h.courseScreen(ctx, r.lang)
	default:
		return h.defaultRoute(), nil
	}
}

// notify renders a transient user-facing notice; failures never leave the
// current screen.
func (h *Handler) notify(message string) {
	h.printf("  » %s\n", message)
}

func (h *Handler) notifyError(err error) {
	h.logger.Debug("screen error", zap.Error(err))
	h.notify(err.Error())
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

// prompt reads one line of input for the given label. It fails with errQuit
// once the input stream is exhausted.
func (h *Handler) prompt(label string) (string, error) {
	h.printf("%s: ", label)
	if !h.in.Scan() {
		return "", errQuit
	}
	return strings.TrimSpace(h.in.Text()), nil
}

// choose prompts until the user enters one of the allowed options.
func (h *Handler) choose(label string, options ...string) (string, error) {
	for {
		value, err := h.prompt(label)
		if err != nil {
			return "", err
		}
		for _, opt := range options {
			if value == opt {
				return value, nil
			}
		}
		h.notify(msgUnknownOption)
	}
}
