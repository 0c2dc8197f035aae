package repository

import "github.com/tu-usuario/pos-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los getters devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	CountByRole(role string) (int, error)
	Delete(id string) error
}
