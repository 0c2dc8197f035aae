package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-api/internal/application/analytics"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
)

// DashboardHandler expone las métricas agregadas del negocio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Ventas del día y de la ventana, stock total, más vendidos, niveles de stock y stock bajo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "Ventana: today | week | month"  default(week)
// @Success      200    {object}  dto.DashboardSummaryDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	rangeKey := c.Query("range", analytics.RangeWeek)
	out, err := h.uc.GetSummary(c.Context(), rangeKey)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "range debe ser today, week o month"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
