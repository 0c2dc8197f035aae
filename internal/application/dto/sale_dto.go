package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea dentro de CreateSaleRequest. El cliente puede
// enviar un precio (el front lo muestra en el carrito) pero el servidor lo
// ignora: el precio se captura del producto al momento de la venta.
type SaleItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	Price     *decimal.Decimal `json:"price,omitempty"` // ignorado por el servidor
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash mobile-money card"`
	CustomerPhone string            `json:"customer_phone,omitempty"` // obligatorio con mobile-money
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	CashierID     string             `json:"cashier_id"`
	CashierName   string             `json:"cashier_name,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}
