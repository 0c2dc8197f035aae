package sales

import (
	"context"

	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los decrementos de stock, la
// venta, sus líneas y la bitácora se confirmen o deshagan como una unidad.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}

// ReceiptGenerator renderiza el recibo PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, store StoreInfo) ([]byte, error)
}

// StoreInfo datos del negocio impresos en el encabezado del recibo.
type StoreInfo struct {
	Name  string
	Phone string
}
