package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// SaleUseCase procesa ventas de forma transaccional y sirve sus lecturas.
//
// CreateSale rebaja el stock de cada línea con un decremento condicional
// atómico (stock = stock - q WHERE stock >= q) dentro de UNA transacción:
// dos ventas concurrentes sobre el mismo producto no pueden pasar ambas la
// verificación, y una línea fallida deshace los decrementos anteriores.
type SaleUseCase struct {
	txRunner SaleTxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso. saleRepo es la instancia atada al
// pool, para lecturas fuera de transacción.
func NewSaleUseCase(txRunner SaleTxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// CreateSale valida la petición, rebaja stock línea por línea en el orden
// recibido y persiste la venta con su bitácora, todo en una transacción.
//
// El precio unitario se captura del producto en el momento del decremento
// (RETURNING price): el precio que pueda venir del cliente se ignora.
func (uc *SaleUseCase) CreateSale(ctx context.Context, cashierID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == entity.PaymentMobileMoney && in.CustomerPhone == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		PaymentMethod: in.PaymentMethod,
		CustomerPhone: in.CustomerPhone,
		CashierID:     cashierID,
		CreatedAt:     now,
	}

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		total := decimal.Zero
		for _, item := range in.Items {
			product, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if product == nil {
				// Ninguna fila coincidió: producto inexistente o stock corto.
				existing, err := productRepo.GetByID(item.ProductID)
				if err != nil {
					return err
				}
				if existing == nil {
					return domain.ErrProductNotFound
				}
				return &domain.InsufficientStockError{
					ProductID:   existing.ID,
					ProductName: existing.Name,
					Requested:   item.Quantity,
					Available:   existing.Stock,
				}
			}
			sale.Items = append(sale.Items, entity.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))

			if err := logRepo.Create(&entity.InventoryLogEntry{
				ID:            uuid.New().String(),
				ProductID:     product.ID,
				QuantityDelta: -item.Quantity,
				Action:        entity.ActionSale,
				UserID:        cashierID,
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}
		sale.TotalAmount = total
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// GetAll devuelve todas las ventas, más recientes primero.
func (uc *SaleUseCase) GetAll(ctx context.Context) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// GetByID devuelve una venta o ErrSaleNotFound. La venta resuelve aunque sus
// productos hayan sido eliminados del catálogo: las líneas son copias.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return ToSaleResponse(sale), nil
}

// GetReport devuelve las ventas dentro de [from, to] inclusive.
func (uc *SaleUseCase) GetReport(ctx context.Context, from, to time.Time) ([]*dto.SaleResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.saleRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out, nil
}

// Delete elimina una venta (solo admin). No repone el stock de sus líneas.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.saleRepo.Delete(ctx, id)
}

// ToSaleResponse proyecta una Sale a su respuesta HTTP.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		CustomerPhone: s.CustomerPhone,
		CashierID:     s.CashierID,
		CashierName:   s.CashierName,
		CreatedAt:     s.CreatedAt,
	}
}
