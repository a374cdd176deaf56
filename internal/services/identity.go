package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"printshop-backend/internal/models"
)

type SignUpInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
}

// IdentityService fronts GoTrue and owns the account + profile pairing.
type IdentityService struct {
	auth     Authenticator
	profiles ProfileStore
}

func NewIdentityService(auth Authenticator, profiles ProfileStore) *IdentityService {
	return &IdentityService{auth: auth, profiles: profiles}
}

// SignUp creates the auth account and then makes sure the profile row
// exists. The auth trigger normally creates the row already; the insert
// here is idempotent, so a failed sign-up can simply be retried.
func (s *IdentityService) SignUp(ctx context.Context, in SignUpInput) (*models.AuthSession, *models.Profile, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Phone == "" || in.Email == "" || in.Password == "" {
		return nil, nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	session, err := s.auth.SignUp(ctx, in.Email, in.Password, map[string]interface{}{
		"nombre":   in.Name,
		"telefono": in.Phone,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	profile, err := s.profiles.CreateProfile(ctx, models.NewProfile{
		AuthID: session.UserID,
		Name:   in.Name,
		Phone:  in.Phone,
		Email:  in.Email,
	})
	if err != nil {
		zap.L().Error("profile creation after sign-up failed",
			zap.String("auth_id", session.UserID.String()), zap.Error(err))
		return session, nil, fmt.Errorf("account created but the profile could not be saved: %w", err)
	}

	return session, profile, nil
}

func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*models.AuthSession, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return session, nil
}

// Refresh exchanges a refresh token. Any failure means the client has to
// drop its stored session and sign in again.
func (s *IdentityService) Refresh(ctx context.Context, refreshToken string) (*models.AuthSession, error) {
	session, err := s.auth.Refresh(ctx, refreshToken)
	if err != nil {
		zap.L().Info("refresh token rejected, session cleared", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	return session, nil
}

func (s *IdentityService) SignOut(ctx context.Context, accessToken string) error {
	if err := s.auth.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return nil
}
