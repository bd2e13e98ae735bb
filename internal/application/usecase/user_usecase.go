package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CompuSpace/compuspace-api/internal/application/auth"
	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

// UserUseCase administración de usuarios dentro de una empresa.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListByCompany lista usuarios de la empresa con paginación.
func (uc *UserUseCase) ListByCompany(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza username, correo de recuperación, rol y opcionalmente el
// password (se rehashea solo si viene uno nuevo).
func (uc *UserUseCase) Update(companyID, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != nil && *in.Username != user.Username {
		existing, err := uc.repo.GetByUsernameAndCompany(*in.Username, companyID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		user.Username = *in.Username
	}
	if in.RecoveryEmail != nil {
		user.RecoveryEmail = *in.RecoveryEmail
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Deactivate desactiva un usuario y deja el registro de auditoría con el
// motivo y el admin que lo hizo. El usuario no se elimina: conserva sus
// ventas y movimientos históricos.
func (uc *UserUseCase) Deactivate(companyID, adminID, userID, reason string) error {
	if reason == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.CompanyID != companyID {
		return domain.ErrUserNotFound
	}
	if user.Status == entity.UserStatusInactive {
		return domain.ErrInvalidInput
	}
	user.Status = entity.UserStatusInactive
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return err
	}
	return uc.repo.CreateDeactivation(&entity.UserDeactivation{
		ID:            uuid.New().String(),
		UserID:        userID,
		AdminID:       adminID,
		Reason:        reason,
		DeactivatedAt: time.Now(),
	})
}
