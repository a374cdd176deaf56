package models

type SignUpRequest struct {
	Name     string `json:"nombre" binding:"required" example:"Ana"`
	Phone    string `json:"telefono" binding:"required" example:"600123123"`
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateOrderForm documents the multipart fields of POST /orders; the
// document itself travels in the "file" part.
type CreateOrderForm struct {
	Description string `form:"descripcion"`
	Copies      string `form:"n_copias"`
	Color       string `form:"a_color"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Reload asks the client to re-fetch its list because the row moved on.
	Reload bool `json:"reload,omitempty"`
}
