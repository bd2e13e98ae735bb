package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, company_id, user_id, payment_method, subtotal, total, item_count, status, reversal_reason, sold_at, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	reversalReason := (*string)(nil)
	if sale.ReversalReason != "" {
		reversalReason = &sale.ReversalReason
	}
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.UserID, sale.PaymentMethod,
		sale.Subtotal, sale.Total, sale.ItemCount, sale.Status, reversalReason,
		sale.SoldAt, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene una venta de la empresa por ID.
func (r *SaleRepo) GetByID(companyID, saleID string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE company_id = $1 AND id = $2`
	var s entity.Sale
	var reversalReason *string
	err := r.q.QueryRow(context.Background(), query, companyID, saleID).Scan(
		&s.ID, &s.CompanyID, &s.UserID, &s.PaymentMethod,
		&s.Subtotal, &s.Total, &s.ItemCount, &s.Status, &reversalReason,
		&s.SoldAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if reversalReason != nil {
		s.ReversalReason = *reversalReason
	}
	return &s, nil
}

// GetLines obtiene las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetLines(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// MarkReversed cambia el estado de la venta a REVERSED y registra el motivo.
// La etiqueta del método de pago no se modifica.
func (r *SaleRepo) MarkReversed(saleID, reason string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2, reversal_reason = $3 WHERE id = $1`,
		saleID, entity.SaleStatusReversed, reason,
	)
	if err != nil {
		return fmt.Errorf("mark sale reversed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark sale reversed: venta %s no existe", saleID)
	}
	return nil
}

// List lista ventas de la empresa, más recientes primero. from/to en nil no
// acotan ese extremo del rango; onlyActive excluye las ventas anuladas.
func (r *SaleRepo) List(companyID string, from, to *time.Time, limit int, onlyActive bool) ([]*entity.Sale, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + saleColumns + ` FROM sales WHERE company_id = $1`)
	args := []any{companyID}
	if onlyActive {
		args = append(args, entity.SaleStatusReversed)
		fmt.Fprintf(&sb, " AND status <> $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		fmt.Fprintf(&sb, " AND sold_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		fmt.Fprintf(&sb, " AND sold_at < $%d", len(args))
	}
	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY sold_at DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var reversalReason *string
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.UserID, &s.PaymentMethod,
			&s.Subtotal, &s.Total, &s.ItemCount, &s.Status, &reversalReason,
			&s.SoldAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if reversalReason != nil {
			s.ReversalReason = *reversalReason
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
