package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

const paymentMethodColumns = `id, company_id, name, description, active, system_defined, created_at, updated_at`

// PaymentMethodRepo implementación del puerto PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentMethodRepository construye el adaptador de métodos de pago.
func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{pool: pool}
}

// Create persiste un método de pago.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		method.ID, method.CompanyID, method.Name, method.Description,
		method.Active, method.SystemDefined, method.CreatedAt, method.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un método de pago de la empresa.
func (r *PaymentMethodRepo) GetByID(companyID, id string) (*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE company_id = $1 AND id = $2`
	var m entity.PaymentMethod
	err := r.pool.QueryRow(context.Background(), query, companyID, id).Scan(
		&m.ID, &m.CompanyID, &m.Name, &m.Description,
		&m.Active, &m.SystemDefined, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// Update actualiza nombre, descripción y estado activo.
func (r *PaymentMethodRepo) Update(method *entity.PaymentMethod) error {
	query := `
		UPDATE payment_methods SET name = $2, description = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		method.ID, method.Name, method.Description, method.Active, method.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// Delete elimina un método de pago por ID.
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}

// List lista los métodos de la empresa; si onlyActive, filtra los inactivos.
func (r *PaymentMethodRepo) List(companyID string, onlyActive bool) ([]*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE company_id = $1`
	if onlyActive {
		query += ` AND active`
	}
	query += ` ORDER BY created_at ASC, name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Description,
			&m.Active, &m.SystemDefined, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
