package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y sus líneas.
// GetByID devuelve (nil, nil) cuando la venta no existe.
type SaleRepository interface {
	// Create inserta la venta y sus líneas en orden. Debe invocarse dentro de
	// la misma transacción que los decrementos de stock.
	Create(sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
	// Delete elimina la venta y sus líneas. Devuelve domain.ErrSaleNotFound
	// si no existe. No repone stock.
	Delete(ctx context.Context, id string) error
}
