package dto

import "time"

// RestockRequest body para POST /api/inventory/restock.
type RestockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// RestockResponse producto actualizado más la entrada de bitácora generada.
type RestockResponse struct {
	Message string            `json:"message"`
	Product ProductResponse   `json:"product"`
	Log     InventoryLogEntry `json:"log"`
}

// InventoryLogEntry una entrada de la bitácora en respuestas HTTP.
type InventoryLogEntry struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name,omitempty"`
	QuantityDelta int       `json:"quantity_delta"`
	Action        string    `json:"action"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
