package repository

import "github.com/tu-usuario/pos-api/internal/domain/entity"

// InventoryLogRepository puerto de la bitácora de inventario (append-only).
type InventoryLogRepository interface {
	Create(entry *entity.InventoryLogEntry) error
	// List devuelve la bitácora completa, más reciente primero, con los
	// nombres de producto y usuario resueltos.
	List() ([]*entity.InventoryLogEntry, error)
}
