package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock nunca es negativo: todas las rebajas pasan por el decremento
// condicional del repositorio (stock = stock - q WHERE stock >= q).
type Product struct {
	ID        string
	Name      string
	Barcode   string // opcional; único si está presente
	Price     decimal.Decimal
	Stock     int
	Category  string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
