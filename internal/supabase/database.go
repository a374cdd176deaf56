package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"printshop-backend/internal/database"
	"printshop-backend/internal/models"
)

// DatabaseClient reads and writes Usuarios and Pedidos over the Supabase
// Postgres connection string.
type DatabaseClient struct {
	db *sqlx.DB
}

func NewDatabaseClient(ctx context.Context, connectionString string) (*DatabaseClient, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) DB() *sqlx.DB {
	return d.db
}

type profileRow struct {
	ID        int64     `db:"id"`
	AuthID    uuid.UUID `db:"auth_id"`
	Name      string    `db:"nombre"`
	Phone     string    `db:"telefono"`
	Email     string    `db:"email"`
	Role      string    `db:"rol"`
	CreatedAt time.Time `db:"created_at"`
}

func (r profileRow) toModel() (*models.Profile, error) {
	role, err := models.ParseRole(r.Role)
	if err != nil {
		return nil, fmt.Errorf("profile %d: %w", r.ID, err)
	}
	return &models.Profile{
		ID:        r.ID,
		AuthID:    r.AuthID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Role:      role,
		CreatedAt: r.CreatedAt,
	}, nil
}

type orderRow struct {
	ID          int64          `db:"id"`
	ClientID    int64          `db:"id_cliente"`
	AdminID     sql.NullInt64  `db:"id_admin"`
	Description string         `db:"descripcion"`
	Copies      int            `db:"n_copias"`
	Color       bool           `db:"a_color"`
	Status      string         `db:"estado"`
	DocumentURL sql.NullString `db:"archivo_url"`
	CreatedAt   time.Time      `db:"created_at"`
	FinishedAt  sql.NullTime   `db:"finished_at"`
	ClientName  string         `db:"cliente_nombre"`
	AdminName   string         `db:"admin_nombre"`
}

// toModel rejects rows that break the order invariants instead of handing
// half-valid data to the services.
func (r orderRow) toModel() (*models.Order, error) {
	status, err := models.ParseOrderStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", r.ID, err)
	}
	if r.Copies < 1 {
		return nil, fmt.Errorf("order %d: invalid copy count %d", r.ID, r.Copies)
	}
	if status != models.StatusWaiting && !r.AdminID.Valid {
		return nil, fmt.Errorf("order %d: status %s without administrator", r.ID, status)
	}

	order := &models.Order{
		ID:          r.ID,
		ClientID:    r.ClientID,
		Description: r.Description,
		Copies:      r.Copies,
		Color:       r.Color,
		Status:      status,
		CreatedAt:   r.CreatedAt,
		ClientName:  r.ClientName,
		AdminName:   r.AdminName,
	}
	if r.AdminID.Valid {
		adminID := r.AdminID.Int64
		order.AdminID = &adminID
	}
	if r.DocumentURL.Valid {
		url := r.DocumentURL.String
		order.DocumentURL = &url
	}
	if r.FinishedAt.Valid {
		finished := r.FinishedAt.Time
		order.FinishedAt = &finished
	}
	return order, nil
}

func (d *DatabaseClient) GetProfileByAuthID(ctx context.Context, authID uuid.UUID) (*models.Profile, error) {
	var row profileRow
	if err := d.db.GetContext(ctx, &row, database.SelectProfileByAuthID, authID); err != nil {
		return nil, wrapError("failed to get profile", err)
	}
	return row.toModel()
}

func (d *DatabaseClient) CreateProfile(ctx context.Context, p models.NewProfile) (*models.Profile, error) {
	if _, err := d.db.ExecContext(ctx, database.InsertProfile, p.AuthID, p.Name, p.Phone, p.Email); err != nil {
		return nil, wrapError("failed to create profile", err)
	}
	return d.GetProfileByAuthID(ctx, p.AuthID)
}

func (d *DatabaseClient) CreateOrder(ctx context.Context, o models.NewOrder) (*models.Order, error) {
	return d.getOrder(ctx, "failed to create order", database.InsertOrder,
		o.ClientID, o.Description, o.Copies, o.Color, string(models.StatusWaiting), o.DocumentURL)
}

func (d *DatabaseClient) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	return d.getOrder(ctx, "failed to get order", database.SelectOrderByID, orderID)
}

// ClaimOrder returns models.ErrNotFound when the order is missing or no
// longer waiting.
func (d *DatabaseClient) ClaimOrder(ctx context.Context, orderID, adminID int64) (*models.Order, error) {
	return d.getOrder(ctx, "failed to claim order", database.ClaimOrder,
		orderID, adminID, string(models.StatusProcessing), string(models.StatusWaiting))
}

func (d *DatabaseClient) CompleteOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	return d.getOrder(ctx, "failed to complete order", database.CompleteOrder,
		orderID, string(models.StatusFinished), string(models.StatusProcessing))
}

func (d *DatabaseClient) DeleteWaitingOrder(ctx context.Context, orderID, clientID int64) error {
	res, err := d.db.ExecContext(ctx, database.DeleteWaitingOrder, orderID, clientID, string(models.StatusWaiting))
	if err != nil {
		return wrapError("failed to delete order", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to delete order: %w", models.ErrNotFound)
	}
	return nil
}

func (d *DatabaseClient) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query, args := database.ListOrdersQuery(filter)

	var rows []orderRow
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapError("failed to list orders", err)
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toModel()
		if err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (d *DatabaseClient) ListDocumentURLs(ctx context.Context) ([]string, error) {
	var urls []string
	if err := d.db.SelectContext(ctx, &urls, database.SelectDocumentURLs); err != nil {
		return nil, wrapError("failed to list document urls", err)
	}
	return urls, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

func (d *DatabaseClient) getOrder(ctx context.Context, op, query string, args ...interface{}) (*models.Order, error) {
	var row orderRow
	if err := d.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, wrapError(op, err)
	}
	return row.toModel()
}

func wrapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pgerrcode.IsIntegrityConstraintViolation(string(pqErr.Code)) {
		return fmt.Errorf("%s: %w: %s", op, models.ErrConstraint, pqErr.Message)
	}

	return fmt.Errorf("%s: %w", op, err)
}
