package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient Role = "Cliente"
	RoleAdmin  Role = "Administrador"
)

// ParseRole accepts the two known roles and the empty string, which stands
// for a profile row whose rol column is NULL.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleAdmin, "":
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Profile is the application-level user record linked to a GoTrue identity.
type Profile struct {
	ID        int64
	AuthID    uuid.UUID
	Name      string
	Phone     string
	Email     string
	Role      Role
	CreatedAt time.Time
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type NewProfile struct {
	AuthID uuid.UUID
	Name   string
	Phone  string
	Email  string
}

// AuthSession is what GoTrue hands back after sign-up, sign-in or refresh.
// AccessToken is empty when sign-up still needs email confirmation.
type AuthSession struct {
	UserID       uuid.UUID
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	ExpiresAt    int64
}
