package entity

import "time"

// Company representa una empresa/tenant del sistema. Todos los productos,
// usuarios, proveedores y ventas pertenecen a exactamente una empresa.
type Company struct {
	ID        string
	NIT       string // identificación tributaria, única en el sistema
	Name      string
	Email     string
	Phone     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
