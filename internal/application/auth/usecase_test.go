package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CompuSpace/compuspace-api/internal/application/auth"
	"github.com/CompuSpace/compuspace-api/internal/application/dto"
	"github.com/CompuSpace/compuspace-api/internal/domain"
	"github.com/CompuSpace/compuspace-api/internal/domain/entity"
	"github.com/CompuSpace/compuspace-api/pkg/jwt"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users         map[string]*entity.User
	deactivations []*entity.UserDeactivation
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) GetByUsernameAndCompany(username, companyID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.CompanyID == companyID {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountByCompany(companyID string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CreateDeactivation(d *entity.UserDeactivation) error {
	c := *d
	r.deactivations = append(r.deactivations, &c)
	return nil
}

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(c *entity.Company) error              { return nil }
func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}

// ── fixtures ──────────────────────────────────────────────────────────────────

const testCompanyID = "empresa-1"

func buildAuthUseCase(users *fakeUserRepo) *auth.AuthUseCase {
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, NIT: "900123456", Name: "CompuSpace SAS"},
	}}
	return auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "compuspace-pos",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

// TestRegisterUser_PrimerUsuarioEsAdmin: el primer usuario de una empresa
// recibe rol admin aunque pida otro rol. A partir del segundo se respeta lo
// solicitado.
func TestRegisterUser_PrimerUsuarioEsAdmin(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	primero, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Username:  "gerente",
		Password:  "secreta123",
		Role:      entity.RoleVendedor, // solicitado, pero es el primero
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, primero.Role,
		"el primer usuario de la empresa siempre es admin")

	segundo, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Username:  "cajero",
		Password:  "secreta123",
		Role:      entity.RoleVendedor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, segundo.Role,
		"del segundo en adelante se respeta el rol solicitado")
}

func TestRegisterUser_RolPorDefectoEsVendedor(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	// Primer usuario ocupa el cupo de admin.
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "secreta123",
	})
	require.NoError(t, err)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "cajero", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, resp.Role)
}

func TestRegisterUser_UsernameDuplicadoEnLaEmpresa(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "otra456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: "no-existe", Username: "alguien", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_RolDesconocido(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "alguien", Password: "secreta123", Role: "supervisor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestRegisterUser_NuncaExponeElHash: la respuesta no debe contener el hash.
func TestRegisterUser_NuncaExponeElHash(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "secreta123",
	})
	require.NoError(t, err)

	stored := users.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en plano")
	assert.NotEmpty(t, stored.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConClaimsCorrectos(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	reg, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "secreta123",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "gerente", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, reg.ID, resp.User.ID)

	userID, companyID, role, err := jwt.Parse("secreto-de-prueba", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, testCompanyID, companyID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "gerente", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUseCase(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// TestLogin_UsuarioInactivoRechazado: un usuario desactivado conserva su
// cuenta pero no puede autenticarse.
func TestLogin_UsuarioInactivoRechazado(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildAuthUseCase(users)

	reg, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Username: "gerente", Password: "secreta123",
	})
	require.NoError(t, err)
	users.users[reg.ID].Status = entity.UserStatusInactive

	_, err = uc.Login(dto.LoginRequest{Username: "gerente", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
