package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create persiste una entrada de bitácora. La tabla es append-only: no hay
// Update ni Delete.
func (r *InventoryLogRepo) Create(entry *entity.InventoryLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_logs (id, product_id, quantity_delta, action, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.QuantityDelta, entry.Action, entry.UserID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory log: %w", err)
	}
	return nil
}

// List devuelve la bitácora completa, más reciente primero, con los nombres
// de producto y usuario resueltos (LEFT JOIN: vacíos si fueron borrados).
func (r *InventoryLogRepo) List() ([]*entity.InventoryLogEntry, error) {
	query := `
		SELECT l.id, COALESCE(l.product_id::TEXT, ''), COALESCE(p.name, ''),
		       l.quantity_delta, l.action, COALESCE(l.user_id::TEXT, ''), COALESCE(u.name, ''), l.created_at
		FROM inventory_logs l
		LEFT JOIN products p ON p.id = l.product_id
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLogEntry
	for rows.Next() {
		var e entity.InventoryLogEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.QuantityDelta,
			&e.Action, &e.UserID, &e.UserName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
