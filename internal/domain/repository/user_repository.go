package repository

import "github.com/CompuSpace/compuspace-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsernameAndCompany(username, companyID string) (*entity.User, error)
	// FindByUsername busca en todas las empresas (login).
	FindByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	// CountByCompany soporta la regla "el primer usuario de la empresa es admin".
	CountByCompany(companyID string) (int64, error)
	// CreateDeactivation registra la auditoría de desactivación.
	CreateDeactivation(d *entity.UserDeactivation) error
}
