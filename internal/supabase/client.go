package supabase

import (
	"context"
	"fmt"

	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
	"printshop-backend/internal/config"
	"printshop-backend/internal/models"
)

// AuthClient talks to Supabase Auth (GoTrue) on behalf of the mobile client.
type AuthClient struct {
	auth gotrue.Client
}

func NewAuthClient(cfg *config.Config) (*AuthClient, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &AuthClient{auth: client.Auth}, nil
}

// SignUp creates the GoTrue account. metadata ends up in raw_user_meta_data,
// which the profile trigger reads.
func (a *AuthClient) SignUp(_ context.Context, email, password string, metadata map[string]interface{}) (*models.AuthSession, error) {
	resp, err := a.auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}

	session := sessionFromTypes(resp.Session)
	// Without auto-confirm GoTrue returns only the user.
	if session.AccessToken == "" {
		session.UserID = resp.User.ID
		session.Email = resp.User.Email
	}
	return session, nil
}

func (a *AuthClient) SignIn(_ context.Context, email, password string) (*models.AuthSession, error) {
	resp, err := a.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}
	return sessionFromTypes(resp.Session), nil
}

func (a *AuthClient) Refresh(_ context.Context, refreshToken string) (*models.AuthSession, error) {
	resp, err := a.auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh failed: %w", err)
	}
	return sessionFromTypes(resp.Session), nil
}

func (a *AuthClient) SignOut(_ context.Context, accessToken string) error {
	if err := a.auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	return nil
}

func sessionFromTypes(s types.Session) *models.AuthSession {
	return &models.AuthSession{
		UserID:       s.User.ID,
		Email:        s.User.Email,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		ExpiresAt:    s.ExpiresAt,
	}
}
