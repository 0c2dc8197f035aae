package usecase

import (
	"github.com/tu-usuario/pos-api/internal/application/auth"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve todos los usuarios sin hashes de password.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Delete elimina un usuario. Rechaza la auto-eliminación (ErrSelfDeletion) y
// la eliminación del último administrador (ErrLastAdmin): quedarse sin admins
// dejaría el sistema sin nadie que pueda crear usuarios.
func (uc *UserUseCase) Delete(requesterID, targetID string) error {
	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if target.ID == requesterID {
		return domain.ErrSelfDeletion
	}
	if target.Role == entity.RoleAdmin {
		admins, err := uc.userRepo.CountByRole(entity.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}
	return uc.userRepo.Delete(targetID)
}
