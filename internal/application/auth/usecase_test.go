package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pos-api/internal/application/auth"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/pos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mock de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type mockUserRepo struct {
	byUsername map[string]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byUsername: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Create(u *entity.User) error {
	m.byUsername[u.Username] = u
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*entity.User, error) {
	return m.byUsername[username], nil
}

func (m *mockUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byUsername))
	for _, u := range m.byUsername {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range m.byUsername {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRepo) Delete(id string) error {
	for username, u := range m.byUsername {
		if u.ID == id {
			delete(m.byUsername, username)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newAuthUC(repo *mockUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "pos-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaPasswordYDefaultCashier(t *testing.T) {
	repo := newMockUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Ana Pérez",
		Username: "ana",
		Password: "contraseña-larga",
		// sin rol → cashier
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, out.Role, "rol por defecto debe ser cashier")

	stored := repo.byUsername["ana"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash,
		"el password nunca se persiste en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("contraseña-larga")))
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	repo := newMockUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Name: "Otra Ana", Username: "ana", Password: "87654321"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// Nombre, username y password son obligatorios: sin ellos no se persiste nada.
func TestRegisterUser_CamposRequeridos(t *testing.T) {
	repo := newMockUserRepo()
	uc := newAuthUC(repo)

	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"todo vacío", dto.RegisterRequest{}},
		{"sin nombre", dto.RegisterRequest{Username: "ana", Password: "12345678"}},
		{"sin username", dto.RegisterRequest{Name: "Ana", Password: "12345678"}},
		{"sin password", dto.RegisterRequest{Name: "Ana", Username: "ana"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterUser(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, repo.byUsername, "ningún usuario debe quedar persistido")
}

func TestRegisterUser_RolFueraDeLaEnumeracion(t *testing.T) {
	uc := newAuthUC(newMockUserRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Bob", Username: "bob", Password: "12345678", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo admin y cashier son roles válidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConUserYRol(t *testing.T) {
	repo := newMockUserRepo()
	uc := newAuthUC(repo)

	created, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Root", Username: "root", Password: "12345678", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "root", Password: "12345678"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "root", out.User.Username)

	// El token debe llevar el mismo user y rol.
	userID, role, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

// El error debe ser idéntico para usuario inexistente y password incorrecto:
// la respuesta no puede revelar cuál de los dos falló.
func TestLogin_MismoErrorParaUsuarioYPassword(t *testing.T) {
	repo := newMockUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "12345678"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Username: "nadie", Password: "12345678"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass, "ambos fallos deben ser indistinguibles")
}
