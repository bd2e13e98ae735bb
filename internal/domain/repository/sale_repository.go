package repository

import (
	"time"

	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(companyID, saleID string) (*entity.Sale, error)
	GetLines(saleID string) ([]*entity.SaleLine, error)
	// MarkReversed cambia el estado a REVERSED y registra el motivo.
	MarkReversed(saleID, reason string) error
	// List lista ventas por rango; con onlyActive excluye las anuladas.
	List(companyID string, from, to *time.Time, limit int, onlyActive bool) ([]*entity.Sale, error)
}
