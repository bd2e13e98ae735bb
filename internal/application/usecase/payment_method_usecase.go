package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/internal/domain/repository"
)

// PaymentMethodUseCase administra los métodos de pago de una empresa.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create crea un método de pago propio de la empresa (SystemDefined=false).
func (uc *PaymentMethodUseCase) Create(companyID string, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	method := &entity.PaymentMethod{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		Description:   in.Description,
		Active:        active,
		SystemDefined: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// Update modifica nombre, descripción o estado activo de un método.
func (uc *PaymentMethodUseCase) Update(companyID, id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		method.Name = *in.Name
	}
	if in.Description != nil {
		method.Description = *in.Description
	}
	if in.Active != nil {
		method.Active = *in.Active
	}
	method.UpdatedAt = time.Now()
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// Delete elimina un método de pago. Los métodos sembrados por el sistema no
// pueden eliminarse; solo desactivarse con Update.
func (uc *PaymentMethodUseCase) Delete(companyID, id string) error {
	method, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return err
	}
	if method == nil {
		return domain.ErrNotFound
	}
	if method.SystemDefined {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// List devuelve los métodos de la empresa. Por defecto solo los activos;
// con all=true incluye también los desactivados.
func (uc *PaymentMethodUseCase) List(companyID string, all bool) (*dto.PaymentMethodListResponse, error) {
	list, err := uc.repo.List(companyID, !all)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toPaymentMethodResponse(m))
	}
	return &dto.PaymentMethodListResponse{Items: items}, nil
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		Description:   m.Description,
		Active:        m.Active,
		SystemDefined: m.SystemDefined,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
