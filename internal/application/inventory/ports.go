package inventory

import (
	"context"

	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Una reposición incrementa el stock y añade su
// entrada de bitácora como una unidad: o se confirman ambas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
