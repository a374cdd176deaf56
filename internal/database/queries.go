package database

import (
	"fmt"
	"strings"

	"printshop-backend/internal/models"
)

const profileColumns = `id, auth_id, nombre, COALESCE(telefono, '') AS telefono,
	COALESCE(email, '') AS email, COALESCE(rol, '') AS rol, created_at`

const (
	SelectProfileByAuthID = `SELECT ` + profileColumns + ` FROM "Usuarios" WHERE auth_id = $1`

	// InsertProfile is idempotent: a second sign-up attempt for the same
	// identity (or a row already created by the auth trigger) is a no-op.
	InsertProfile = `
		INSERT INTO "Usuarios" (auth_id, nombre, telefono, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (auth_id) DO NOTHING`
)

// Order reads always go through the p/c/a aliases so the same column list
// serves plain selects and the CTE-wrapped writes.
const (
	orderColumns = `p.id, p.id_cliente, p.id_admin, p.descripcion, p.n_copias, p.a_color,
	p.estado, p.archivo_url, p.created_at, p.finished_at,
	COALESCE(c.nombre, '') AS cliente_nombre, COALESCE(a.nombre, '') AS admin_nombre`

	orderJoins = `
	LEFT JOIN "Usuarios" c ON c.id = p.id_cliente
	LEFT JOIN "Usuarios" a ON a.id = p.id_admin`
)

func selectOrdersFrom(source string) string {
	return `SELECT ` + orderColumns + ` FROM ` + source + orderJoins
}

var (
	SelectOrders = selectOrdersFrom(`"Pedidos" p`)

	SelectOrderByID = SelectOrders + ` WHERE p.id = $1`

	InsertOrder = `WITH p AS (
		INSERT INTO "Pedidos" (id_cliente, descripcion, n_copias, a_color, estado, archivo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	) ` + selectOrdersFrom("p")

	// ClaimOrder only matches while the order is still waiting, so two
	// administrators racing for the same row cannot both win.
	ClaimOrder = `WITH p AS (
		UPDATE "Pedidos" SET id_admin = $2, estado = $3
		WHERE id = $1 AND estado = $4
		RETURNING *
	) ` + selectOrdersFrom("p")

	CompleteOrder = `WITH p AS (
		UPDATE "Pedidos" SET estado = $2, finished_at = NOW()
		WHERE id = $1 AND estado = $3
		RETURNING *
	) ` + selectOrdersFrom("p")

	DeleteWaitingOrder = `
		DELETE FROM "Pedidos"
		WHERE id = $1 AND id_cliente = $2 AND estado = $3`

	SelectDocumentURLs = `SELECT archivo_url FROM "Pedidos" WHERE archivo_url IS NOT NULL`
)

// ListOrdersQuery builds the filtered read behind every list view.
func ListOrdersQuery(f models.OrderFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("p.estado = $%d", len(args)))
	}
	if f.ClientID != 0 {
		args = append(args, f.ClientID)
		conds = append(conds, fmt.Sprintf("p.id_cliente = $%d", len(args)))
	}
	if f.AdminID != 0 {
		args = append(args, f.AdminID)
		conds = append(conds, fmt.Sprintf("p.id_admin = $%d", len(args)))
	}

	query := SelectOrders
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	if f.NewestFirst {
		query += "\n\tORDER BY p.created_at DESC"
	}
	return query, args
}
