package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de ventas.
// Todas las consultas excluyen las ventas anuladas (status REVERSED).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// rangeFilter arma el WHERE común: empresa + ventas activas + rango opcional.
func rangeFilter(companyID string, from, to *time.Time) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`s.company_id = $1 AND s.status <> $2`)
	args := []any{companyID, entity.SaleStatusReversed}
	if from != nil {
		args = append(args, *from)
		fmt.Fprintf(&sb, " AND s.sold_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		fmt.Fprintf(&sb, " AND s.sold_at < $%d", len(args))
	}
	return sb.String(), args
}

// GetSalesMetrics agrega conteo, ingresos, items vendidos, promedio, máximo y
// mínimo de las ventas activas del rango.
func (r *ReportRepo) GetSalesMetrics(ctx context.Context, companyID string, from, to *time.Time) (repository.SalesMetrics, error) {
	where, args := rangeFilter(companyID, from, to)
	query := `
	SELECT
	    COUNT(*)                          AS sale_count,
	    COALESCE(SUM(s.total), 0)         AS revenue,
	    COALESCE(SUM(s.item_count), 0)    AS items,
	    COALESCE(AVG(s.total), 0)         AS average,
	    COALESCE(MAX(s.total), 0)         AS max_total,
	    COALESCE(MIN(s.total), 0)         AS min_total
	FROM sales s
	WHERE ` + where
	var m repository.SalesMetrics
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&m.SaleCount, &m.Revenue, &m.Items, &m.Average, &m.Max, &m.Min,
	)
	if err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("sales metrics: %w", err)
	}
	return m, nil
}

// GetMethodBreakdown agrupa las ventas activas por método de pago, ordenado
// por frecuencia descendente. limit <= 0 no limita.
func (r *ReportRepo) GetMethodBreakdown(ctx context.Context, companyID string, from, to *time.Time, limit int) ([]repository.MethodBreakdown, error) {
	where, args := rangeFilter(companyID, from, to)
	query := `
	SELECT s.payment_method, COUNT(*) AS sale_count, COALESCE(SUM(s.total), 0) AS total
	FROM sales s
	WHERE ` + where + `
	GROUP BY s.payment_method
	ORDER BY sale_count DESC, total DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("method breakdown: %w", err)
	}
	defer rows.Close()
	var list []repository.MethodBreakdown
	for rows.Next() {
		var b repository.MethodBreakdown
		if err := rows.Scan(&b.Method, &b.Count, &b.Total); err != nil {
			return nil, fmt.Errorf("scan method breakdown: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetDayBreakdown agrupa las ventas activas por día calendario, ascendente.
func (r *ReportRepo) GetDayBreakdown(ctx context.Context, companyID string, from, to *time.Time) ([]repository.DayBreakdown, error) {
	where, args := rangeFilter(companyID, from, to)
	query := `
	SELECT to_char(s.sold_at::date, 'YYYY-MM-DD') AS day,
	       COUNT(*)                               AS sale_count,
	       COALESCE(SUM(s.total), 0)              AS total
	FROM sales s
	WHERE ` + where + `
	GROUP BY s.sold_at::date
	ORDER BY s.sold_at::date ASC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("day breakdown: %w", err)
	}
	defer rows.Close()
	var list []repository.DayBreakdown
	for rows.Next() {
		var b repository.DayBreakdown
		if err := rows.Scan(&b.Day, &b.Count, &b.Total); err != nil {
			return nil, fmt.Errorf("scan day breakdown: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetTopProducts une líneas de venta con ventas activas desde `since`, agrupa
// por producto y ordena por unidades vendidas descendente.
func (r *ReportRepo) GetTopProducts(ctx context.Context, companyID string, since time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
	SELECT p.id, p.code, p.name, COALESCE(SUM(l.quantity), 0) AS units_sold
	FROM sale_lines l
	JOIN sales s    ON s.id = l.sale_id
	JOIN products p ON p.id = l.product_id
	WHERE s.company_id = $1 AND s.status <> $2 AND s.sold_at >= $3
	GROUP BY p.id, p.code, p.name
	ORDER BY units_sold DESC, p.name ASC
	LIMIT $4`
	rows, err := r.pool.Query(ctx, query, companyID, entity.SaleStatusReversed, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Code, &t.Name, &t.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
