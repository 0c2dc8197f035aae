package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=200"`
	Barcode  string           `json:"barcode,omitempty"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Stock    *int             `json:"stock" validate:"required,min=0"`
	Category string           `json:"category,omitempty"`
	ImageURL string           `json:"image_url,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Actualización parcial:
// los campos nil se dejan como están. El stock no se edita por aquí; se mueve
// vía ventas y reposiciones.
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Barcode  *string          `json:"barcode,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Category *string          `json:"category,omitempty"`
	ImageURL *string          `json:"image_url,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Category  string          `json:"category,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
