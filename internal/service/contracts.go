package service

import (
	"context"

	"github.com/linguago/linguago/internal/domain/entities"
)

// APIClient is the backend surface the auth service depends on.
type APIClient interface {
	Register(ctx context.Context, data entities.RegisterData) (*entities.APIResponse, error)
	Login(ctx context.Context, creds entities.Credentials) (*entities.User, string, error)
	UpdateProfile(ctx context.Context, userID int64, fields entities.UserPatch) (*entities.APIResponse, error)
	UpdateProgress(ctx context.Context, userID int64, update entities.ProgressUpdate) (*entities.APIResponse, error)
	DeleteAccount(ctx context.Context, userID int64) (*entities.APIResponse, error)
	ResetPassword(ctx context.Context, email, newPassword string) (*entities.APIResponse, error)
}

// PreferenceStore is the on-device persistence the auth service depends on.
type PreferenceStore interface {
	SaveUser(ctx context.Context, user *entities.User) error
	User(ctx context.Context) (*entities.User, error)
	IsLoggedIn(ctx context.Context) (bool, error)
	SaveToken(ctx context.Context, token string) error
	MergeUser(ctx context.Context, patch entities.UserPatch) error
	Clear(ctx context.Context) error
}
