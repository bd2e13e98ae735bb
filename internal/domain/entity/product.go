package entity

import "time"

// Product representa un producto del inventario. El código es único por empresa.
// Precio y stock son enteros (unidades de moneda sin fracción, política del
// sistema original); el stock nunca puede quedar negativo.
type Product struct {
	ID          string
	CompanyID   string
	Code        string // código único por empresa
	Name        string
	Description string
	Price       int64 // unidades enteras de moneda
	Stock       int64 // siempre >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
