package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/application/usecase"
	"github.com/tu-usuario/pos-api/internal/domain"
)

// UserHandler maneja la administración de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario (solo admin)
// @Description  Rechaza la autoeliminación y la eliminación del último admin.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrSelfDeletion):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SELF_DELETE", Message: "no puedes eliminar tu propia cuenta"})
		case errors.Is(err, domain.ErrLastAdmin):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_ADMIN", Message: "no se puede eliminar el último admin"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}
