package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrSaleNotFound        = errors.New("venta no encontrada")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser mayor a 0")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrProductHasSales     = errors.New("el producto tiene ventas registradas")
	ErrSaleAlreadyReversed = errors.New("la venta ya fue anulada")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrIntegrity           = errors.New("violación de integridad referencial")
)
