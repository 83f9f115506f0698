// Package service implements the auth/session manager: it composes the
// backend API client with the on-device preference store.
package service

import (
	"context"
	"errors"

	"github.com/linguago/linguago/internal/domain/entities"
)

var (
	// ErrRegistrationFailed is returned when the backend answers a
	// registration request with success=false and no message of its own.
	ErrRegistrationFailed = errors.New("Error al registrar usuario")

	// ErrMalformedResponse is returned when a success response lacks the
	// fields the operation needs (e.g. a profile update without a user).
	ErrMalformedResponse = errors.New("Error al actualizar perfil")
)

// AuthService manages the authentication lifecycle. Every method either
// returns a value or fails with an error meant to be rendered verbatim;
// nothing here retries.
type AuthService struct {
	api   APIClient
	store PreferenceStore
}

// NewAuthService creates an AuthService over the given client and store.
func NewAuthService(api APIClient, store PreferenceStore) *AuthService {
	return &AuthService{api: api, store: store}
}

// Login authenticates against the backend and persists the returned user
// locally. When the backend issues a session token it is stored as well, so
// subsequent requests carry it.
func (s *AuthService) Login(ctx context.Context, creds entities.Credentials) (*entities.User, error) {
	user, token, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if token != "" {
		if err := s.store.SaveToken(ctx, token); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// Register creates the account and, on success, logs in with the same
// credentials (auto-login). A response with success=false fails loudly with
// the backend's message so the screen can render it.
func (s *AuthService) Register(ctx context.Context, data entities.RegisterData) (*entities.User, error) {
	resp, err := s.api.Register(ctx, data)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, ErrRegistrationFailed
	}

	return s.Login(ctx, entities.Credentials{
		Email:    data.Email,
		Password: data.Password,
	})
}

// Logout clears the local session. There is no server-side session to
// invalidate.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// CurrentUser returns the cached user record without hitting the network.
func (s *AuthService) CurrentUser(ctx context.Context) (*entities.User, error) {
	return s.store.User(ctx)
}

// IsAuthenticated returns the local session flag without hitting the network.
func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.store.IsLoggedIn(ctx)
}

// UpdateProfile patches the profile server-side, then replaces the cached
// record with the user the backend returned.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, fields entities.UserPatch) (*entities.User, error) {
	resp, err := s.api.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	if !resp.Success || resp.User == nil {
		return nil, ErrMalformedResponse
	}

	if err := s.store.SaveUser(ctx, resp.User); err != nil {
		return nil, err
	}

	return resp.User, nil
}

// UpdateProgress patches whichever progress percentages are provided, then
// mirrors the same partial fields into the cached record. The network call
// always precedes the local write.
func (s *AuthService) UpdateProgress(ctx context.Context, userID int64, update entities.ProgressUpdate) error {
	update.Clamp()

	if _, err := s.api.UpdateProgress(ctx, userID, update); err != nil {
		return err
	}

	return s.store.MergeUser(ctx, update.Patch())
}

// ResetPassword asks the backend to set a new password. Local state is
// untouched; the user logs in again with the new password.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	_, err := s.api.ResetPassword(ctx, email, newPassword)
	return err
}

// DeleteAccount removes the account server-side and clears the local
// session.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if _, err := s.api.DeleteAccount(ctx, userID); err != nil {
		return err
	}

	return s.store.Clear(ctx)
}
