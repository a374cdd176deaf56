package services

import (
	"context"

	"github.com/google/uuid"
	"printshop-backend/internal/models"
)

type ProfileStore interface {
	GetProfileByAuthID(ctx context.Context, authID uuid.UUID) (*models.Profile, error)
	CreateProfile(ctx context.Context, p models.NewProfile) (*models.Profile, error)
}

// OrderStore is implemented by supabase.DatabaseClient. Conditional writes
// report models.ErrNotFound when no row matched.
type OrderStore interface {
	CreateOrder(ctx context.Context, o models.NewOrder) (*models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	ClaimOrder(ctx context.Context, orderID, adminID int64) (*models.Order, error)
	CompleteOrder(ctx context.Context, orderID int64) (*models.Order, error)
	DeleteWaitingOrder(ctx context.Context, orderID, clientID int64) error
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	ListDocumentURLs(ctx context.Context) ([]string, error)
}

type DocumentStore interface {
	Upload(path, contentType string, data []byte) error
	PublicURL(path string) string
	PathFromURL(url string) (string, bool)
	Remove(paths ...string) error
	List(prefix string) ([]models.StoredObject, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event string, order *models.Order) error
}

type Authenticator interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*models.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*models.AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthSession, error)
	SignOut(ctx context.Context, accessToken string) error
}
