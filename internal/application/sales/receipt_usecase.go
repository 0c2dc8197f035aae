package sales

import (
	"context"

	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta existente.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptGenerator
	store     StoreInfo
}

// NewReceiptUseCase construye el caso de uso con los datos fijos del negocio.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptGenerator, store StoreInfo) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator, store: store}
}

// GetReceiptPDF busca la venta y renderiza su recibo.
// ErrSaleNotFound si la venta no existe.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return uc.generator.GenerateReceipt(ctx, sale, uc.store)
}
