package models

import "time"

type OrderResponse struct {
	ID          int64      `json:"id"`
	ClientID    int64      `json:"id_cliente"`
	ClientName  string     `json:"cliente_nombre,omitempty"`
	AdminID     *int64     `json:"id_admin"`
	AdminName   string     `json:"admin_nombre,omitempty"`
	Description string     `json:"descripcion"`
	Copies      int        `json:"n_copias"`
	Color       bool       `json:"a_color"`
	Status      string     `json:"estado"`
	DocumentURL *string    `json:"archivo_url"`
	CreatedAt   time.Time  `json:"created_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	Deletable   bool       `json:"deletable"`
}

func NewOrderResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		AdminID:     o.AdminID,
		AdminName:   o.AdminName,
		Description: o.Description,
		Copies:      o.Copies,
		Color:       o.Color,
		Status:      string(o.Status),
		DocumentURL: o.DocumentURL,
		CreatedAt:   o.CreatedAt,
		FinishedAt:  o.FinishedAt,
		Deletable:   o.Deletable(),
	}
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func NewOrderListResponse(orders []Order) OrderListResponse {
	resp := OrderListResponse{Orders: make([]OrderResponse, len(orders))}
	for i := range orders {
		resp.Orders[i] = NewOrderResponse(&orders[i])
	}
	return resp
}

type StatusResponse struct {
	OrderID    int64      `json:"order_id"`
	Status     string     `json:"estado"`
	AdminID    *int64     `json:"id_admin"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

type ProfileResponse struct {
	ID     int64  `json:"id"`
	AuthID string `json:"auth_id"`
	Name   string `json:"nombre"`
	Phone  string `json:"telefono"`
	Email  string `json:"email"`
	Role   string `json:"rol"`
}

func NewProfileResponse(p *Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:     p.ID,
		AuthID: p.AuthID.String(),
		Name:   p.Name,
		Phone:  p.Phone,
		Email:  p.Email,
		Role:   string(p.Role),
	}
}

type SessionResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	// ConfirmationRequired is set when sign-up produced no session.
	ConfirmationRequired bool `json:"confirmation_required,omitempty"`
}

func NewSessionResponse(s *AuthSession) SessionResponse {
	return SessionResponse{
		UserID:               s.UserID.String(),
		Email:                s.Email,
		AccessToken:          s.AccessToken,
		RefreshToken:         s.RefreshToken,
		ExpiresIn:            s.ExpiresIn,
		ExpiresAt:            s.ExpiresAt,
		ConfirmationRequired: s.AccessToken == "",
	}
}

type SignUpResponse struct {
	Session SessionResponse  `json:"session"`
	Profile *ProfileResponse `json:"profile"`
}

type ScreenResponse struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Title string `json:"title"`
}

type MeResponse struct {
	Profile *ProfileResponse `json:"profile"`
	Screens []ScreenResponse `json:"screens"`
}

type NavigationResponse struct {
	Location      string `json:"location"`
	Authenticated bool   `json:"authenticated"`
	Redirect      string `json:"redirect,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
