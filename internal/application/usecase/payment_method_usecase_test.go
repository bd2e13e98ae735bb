package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/application/usecase"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPaymentMethodRepo struct {
	methods map[string]*entity.PaymentMethod
}

func newMemPaymentMethodRepo() *memPaymentMethodRepo {
	return &memPaymentMethodRepo{methods: make(map[string]*entity.PaymentMethod)}
}

func (r *memPaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	for _, existing := range r.methods {
		if existing.CompanyID == m.CompanyID && existing.Name == m.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.methods[m.ID] = &cp
	return nil
}

func (r *memPaymentMethodRepo) GetByID(companyID, id string) (*entity.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok || m.CompanyID != companyID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memPaymentMethodRepo) Update(m *entity.PaymentMethod) error {
	if _, ok := r.methods[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	r.methods[m.ID] = &cp
	return nil
}

func (r *memPaymentMethodRepo) Delete(id string) error {
	delete(r.methods, id)
	return nil
}

func (r *memPaymentMethodRepo) List(companyID string, onlyActive bool) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.methods {
		if m.CompanyID != companyID {
			continue
		}
		if onlyActive && !m.Active {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.NIT == nit {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests registro de empresa — siembra de métodos del sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCompany_SiembraMetodosDelSistema(t *testing.T) {
	companyRepo := newMemCompanyRepo()
	methodRepo := newMemPaymentMethodRepo()
	companyUC := usecase.NewCompanyUseCase(companyRepo, methodRepo)

	company, err := companyUC.Create(dto.CreateCompanyRequest{NIT: "900111222-3", Name: "Tienda Uno"})
	require.NoError(t, err)

	methods, err := methodRepo.List(company.ID, false)
	require.NoError(t, err)
	assert.Len(t, methods, 6, "cada empresa nueva debe recibir sus seis métodos de pago")

	names := make(map[string]bool)
	for _, m := range methods {
		assert.True(t, m.SystemDefined, "los métodos sembrados deben ser del sistema")
		assert.True(t, m.Active, "los métodos sembrados deben nacer activos")
		assert.Equal(t, company.ID, m.CompanyID)
		names[m.Name] = true
	}
	assert.True(t, names["Efectivo"], "Efectivo debe estar entre los métodos sembrados")
	assert.False(t, names["Nequi"], "no debe sembrarse nada fuera de la lista fija")
}

func TestCreateCompany_NITDuplicadoRechazado(t *testing.T) {
	companyUC := usecase.NewCompanyUseCase(newMemCompanyRepo(), newMemPaymentMethodRepo())

	_, err := companyUC.Create(dto.CreateCompanyRequest{NIT: "900111222-3", Name: "Tienda Uno"})
	require.NoError(t, err)

	_, err = companyUC.Create(dto.CreateCompanyRequest{NIT: "900111222-3", Name: "Otra Tienda"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el NIT es único entre empresas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests métodos de pago
// ──────────────────────────────────────────────────────────────────────────────

// seedCompanyWithMethods registra una empresa con sus métodos del sistema y
// devuelve su ID junto al repo de métodos.
func seedCompanyWithMethods(t *testing.T) (string, *memPaymentMethodRepo) {
	t.Helper()
	methodRepo := newMemPaymentMethodRepo()
	companyUC := usecase.NewCompanyUseCase(newMemCompanyRepo(), methodRepo)
	company, err := companyUC.Create(dto.CreateCompanyRequest{NIT: "900111222-3", Name: "Tienda Uno"})
	require.NoError(t, err)
	return company.ID, methodRepo
}

func TestPaymentMethod_CrearPersonalizado(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	created, err := uc.Create(companyID, dto.CreatePaymentMethodRequest{
		Name:        "Nequi",
		Description: "Billetera digital",
	})
	require.NoError(t, err)
	assert.False(t, created.SystemDefined, "los métodos creados por la empresa no son del sistema")
	assert.True(t, created.Active, "activo por defecto si no se indica lo contrario")

	list, err := uc.List(companyID, false)
	require.NoError(t, err)
	assert.Len(t, list.Items, 7, "seis del sistema más el personalizado")
}

func TestPaymentMethod_NombreVacioRechazado(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	_, err := uc.Create(companyID, dto.CreatePaymentMethodRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentMethod_EliminarDelSistemaProhibido(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	list, err := uc.List(companyID, true)
	require.NoError(t, err)
	require.NotEmpty(t, list.Items)

	err = uc.Delete(companyID, list.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un método sembrado por el sistema no puede eliminarse")
}

func TestPaymentMethod_EliminarPersonalizadoPermitido(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	created, err := uc.Create(companyID, dto.CreatePaymentMethodRequest{Name: "Nequi"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(companyID, created.ID))

	list, err := uc.List(companyID, false)
	require.NoError(t, err)
	assert.Len(t, list.Items, 6, "solo quedan los métodos del sistema")
}

func TestPaymentMethod_DesactivarDelSistemaPermitido(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	all, err := uc.List(companyID, true)
	require.NoError(t, err)
	target := all.Items[0]

	inactive := false
	updated, err := uc.Update(companyID, target.ID, dto.UpdatePaymentMethodRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.True(t, updated.SystemDefined, "desactivar no cambia el origen del método")

	actives, err := uc.List(companyID, false)
	require.NoError(t, err)
	assert.Len(t, actives.Items, 5, "el método desactivado sale del listado por defecto")

	withInactive, err := uc.List(companyID, true)
	require.NoError(t, err)
	assert.Len(t, withInactive.Items, 6, "all=true incluye los desactivados")
}

func TestPaymentMethod_EliminarInexistente(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	err := uc.Delete(companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaymentMethod_AisladoPorEmpresa(t *testing.T) {
	companyID, methodRepo := seedCompanyWithMethods(t)
	uc := usecase.NewPaymentMethodUseCase(methodRepo)

	list, err := uc.List(companyID, true)
	require.NoError(t, err)
	require.NotEmpty(t, list.Items)

	// Otra empresa no puede ver ni borrar métodos ajenos.
	err = uc.Delete("otra-empresa", list.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	other, err := uc.List("otra-empresa", false)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
