package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPairResponse par de tokens emitidos en login y refresh.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest entrada para rotar un refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UserResponse identidad visible de un usuario (nunca incluye el hash).
type UserResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DashboardResponse resumen del usuario autenticado.
type DashboardResponse struct {
	Message   string       `json:"message"`
	UserInfo  UserResponse `json:"user_info"`
	LastLogin *time.Time   `json:"last_login,omitempty"`
}
