package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/application/inventory"
	"github.com/tu-usuario/pos-api/internal/domain"
)

// InventoryHandler maneja reposición de stock y el historial de inventario.
type InventoryHandler struct {
	uc *inventory.RestockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RestockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Restock godoc
// @Summary      Reponer stock de un producto (solo admin)
// @Description  Incrementa el stock y registra la entrada en el historial en una sola transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.RestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Restock(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Logs godoc
// @Summary      Historial de movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryLogEntry
// @Router       /api/inventory/logs [get]
func (h *InventoryHandler) Logs(c *fiber.Ctx) error {
	out, err := h.uc.Logs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
