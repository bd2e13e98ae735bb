package dto

import "time"

// RegisterRequest entrada para crear un usuario en una empresa.
type RegisterRequest struct {
	CompanyID     string `json:"company_id"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	RecoveryEmail string `json:"recovery_email"`
	Role          string `json:"role"` // ignorado si es el primer usuario de la empresa
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password en vacío no cambia.
type UpdateUserRequest struct {
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	RecoveryEmail *string `json:"recovery_email"`
	Role          *string `json:"role"`
}

// DeactivateUserRequest entrada para desactivar un usuario (solo admin).
type DeactivateUserRequest struct {
	Reason string `json:"reason"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	RecoveryEmail string    `json:"recovery_email,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
