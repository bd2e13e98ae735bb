package entity

import "time"

// Roles válidos para User. Representación estable como string (no enteros).
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleBodeguero = "bodeguero"
)

// Estados de User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema (pertenece a una Company).
// El primer usuario creado en una empresa recibe rol admin automáticamente.
type User struct {
	ID            string
	CompanyID     string
	Username      string // único por empresa
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string // admin, vendedor, bodeguero
	RecoveryEmail string
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidRole indica si la cadena corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleVendedor, RoleBodeguero:
		return true
	}
	return false
}

// UserDeactivation registra la desactivación de un usuario por un administrador.
// Es un registro de auditoría: nunca se modifica ni elimina.
type UserDeactivation struct {
	ID            string
	UserID        string
	AdminID       string
	Reason        string
	DeactivatedAt time.Time
}
