package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/application/sales"
	"github.com/tu-usuario/pos-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP para ventas (protegido).
type SaleHandler struct {
	uc        *sales.SaleUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, receiptUC *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta stock de forma atómica; si algún ítem no tiene stock suficiente no se registra nada.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Ítems y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.Context(), GetUserID(c), in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAll godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte de ventas por rango de fechas (solo admin)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Fecha inicio (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fecha fin (YYYY-MM-DD)"
// @Success      200    {array}   dto.SaleResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales/report/range [get]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	from, _, err := parseDateParam(c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido, formato YYYY-MM-DD"})
	}
	to, dateOnly, err := parseDateParam(c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido, formato YYYY-MM-DD"})
	}
	// end inclusivo: una fecha sin hora cubre hasta el final de ese día.
	// Un timestamp RFC3339 explícito se respeta tal cual.
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	out, err := h.uc.GetReport(c.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end debe ser posterior a start"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta (solo admin, no repone stock)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// Receipt godoc
// @Summary      Descargar recibo de venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.receiptUC.GetReceiptPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

// parseDateParam acepta YYYY-MM-DD o RFC3339. dateOnly indica que el valor
// venía sin hora, para que el caller decida si expandirlo a día completo.
func parseDateParam(s string) (t time.Time, dateOnly bool, err error) {
	if s == "" {
		return time.Time{}, false, errors.New("fecha vacía")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}
