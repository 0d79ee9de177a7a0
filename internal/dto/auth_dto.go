package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type CrearAdminRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Access   string   `json:"access"`
	Refresh  string   `json:"refresh"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type MeResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type RolResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
}

type MensajeResponse struct {
	Message string `json:"message"`
}
