package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash        = "cash"
	PaymentMobileMoney = "mobile-money"
	PaymentCard        = "card"
)

// ValidPaymentMethod indica si el método pertenece a la enumeración cerrada.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentMobileMoney || m == PaymentCard
}

// SaleItem es una línea de venta. ProductName y UnitPrice se capturan del
// producto al momento de la venta, de modo que la venta sigue siendo legible
// aunque el producto sea editado o eliminado después.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal devuelve UnitPrice × Quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa una venta cerrada. Inmutable una vez creada; solo un admin
// puede eliminarla (sin reponer stock).
type Sale struct {
	ID            string
	Items         []SaleItem // en el orden en que llegaron las líneas
	TotalAmount   decimal.Decimal
	PaymentMethod string // cash, mobile-money, card
	CustomerPhone string // obligatorio cuando PaymentMethod = mobile-money
	CashierID     string
	CashierName   string // resuelto en lecturas (join), vacío si el usuario fue borrado
	CreatedAt     time.Time
}
