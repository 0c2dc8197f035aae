package entity

import "time"

// Acciones registradas en la bitácora de inventario.
const (
	ActionRestock = "restock"
	ActionSale    = "sale"
)

// InventoryLogEntry es una entrada append-only de la bitácora de inventario.
// QuantityDelta es positivo en reposiciones y negativo en rebajas por venta.
type InventoryLogEntry struct {
	ID            string
	ProductID     string
	ProductName   string // resuelto en lecturas (join), vacío si el producto fue borrado
	QuantityDelta int
	Action        string // restock, sale
	UserID        string
	UserName      string // resuelto en lecturas (join)
	CreatedAt     time.Time
}
