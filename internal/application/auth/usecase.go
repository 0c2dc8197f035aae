package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
	"github.com/tu-usuario/pos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrInvalidInput si falta nombre, username o password o si el rol
// no pertenece a la enumeración cerrada, y ErrUsernameTaken si el username ya
// existe. La restricción "solo admin" la impone el guard de la ruta, no este
// caso de uso.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCashier
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Username desconocido y password incorrecto devuelven exactamente el mismo
// ErrInvalidCredentials: la respuesta no revela cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse proyecta un User a su respuesta sin campos sensibles.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
