// Package api implements the HTTP client for the LinguaGo backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/linguago/linguago/internal/domain/entities"
)

// Fallback error messages, in the product's display language. They are shown
// whenever the backend does not provide a message of its own.
const (
	msgRegisterFailed      = "Error al registrar usuario"
	msgLoginFailed         = "Error al iniciar sesión"
	msgUpdateProfileFailed = "Error al actualizar perfil"
	msgUpdateProgressFail  = "Error al actualizar progreso"
	msgDeleteAccountFailed = "Error al eliminar cuenta"
	msgResetPasswordFailed = "Error al restablecer contraseña"
)

// TokenSource supplies the stored session token for outgoing requests.
// An empty token means no Authorization header is attached.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Error is an API failure carrying the message to render to the user:
// the backend's message when it sent one, the operation fallback otherwise.
type Error struct {
	Message string // user-facing text
	Err     error  // underlying transport error, if any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Client issues requests against the LinguaGo backend. Every operation is a
// single request/response pair: no retries, no batching, one fixed overall
// timeout.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	tokens  TokenSource
}

// New creates a Client for the given base URL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		tokens:  tokens,
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, data entities.RegisterData) (*entities.APIResponse, error) {
	var resp entities.APIResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", data, &resp, msgRegisterFailed); err != nil {
		return nil, err
	}

	return &resp, nil
}

// loginResponse is the login payload: the user object itself, optionally
// accompanied by a session token.
type loginResponse struct {
	entities.User
	Token string `json:"token"`
}

// Login exchanges credentials for the user record and, when the backend
// issues one, a session token.
func (c *Client) Login(ctx context.Context, creds entities.Credentials) (*entities.User, string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &resp, msgLoginFailed); err != nil {
		return nil, "", err
	}

	return &resp.User, resp.Token, nil
}

// UpdateProfile patches the user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, userID int64, fields entities.UserPatch) (*entities.APIResponse, error) {
	body := map[string]any{}
	if fields.Name != nil {
		body["name"] = *fields.Name
	}
	if fields.Country != nil {
		body["country"] = *fields.Country
	}
	if fields.Avatar != nil {
		body["avatar"] = *fields.Avatar
	}
	if fields.Level != nil {
		body["level"] = *fields.Level
	}

	var resp entities.APIResponse
	path := fmt.Sprintf("/api/users/%d", userID)
	if err := c.do(ctx, http.MethodPatch, path, body, &resp, msgUpdateProfileFailed); err != nil {
		return nil, err
	}

	return &resp, nil
}

// UpdateProgress patches the user's per-language progress. Nil fields are
// omitted from the body, meaning "leave unchanged" server-side.
func (c *Client) UpdateProgress(ctx context.Context, userID int64, update entities.ProgressUpdate) (*entities.APIResponse, error) {
	var resp entities.APIResponse
	path := fmt.Sprintf("/api/progress/%d", userID)
	if err := c.do(ctx, http.MethodPatch, path, update, &resp, msgUpdateProgressFail); err != nil {
		return nil, err
	}

	return &resp, nil
}

// DeleteAccount removes the account server-side.
func (c *Client) DeleteAccount(ctx context.Context, userID int64) (*entities.APIResponse, error) {
	var resp entities.APIResponse
	path := fmt.Sprintf("/api/users/%d", userID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp, msgDeleteAccountFailed); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ResetPassword sets a new password for the account with the given email.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) (*entities.APIResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": newPassword,
	}

	var resp entities.APIResponse
	if err := c.do(ctx, http.MethodPost, "/api/reset-password", body, &resp, msgResetPasswordFailed); err != nil {
		return nil, err
	}

	return &resp, nil
}

// do issues one request and decodes the response into out. Any transport
// error or non-2xx status becomes an *Error carrying the server message
// when one could be decoded, the fallback otherwise.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.Warn("failed to read session token", zap.Error(err))
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &Error{Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("api response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		var envelope entities.APIResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &Error{Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Message: fallback, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return nil
}
