package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/application/usecase"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// RestockUseCase reposiciones de stock con bitácora transaccional.
type RestockUseCase struct {
	txRunner TxRunner
	logRepo  repository.InventoryLogRepository
}

// NewRestockUseCase construye el caso de uso. logRepo es la instancia atada
// al pool, para lecturas fuera de transacción.
func NewRestockUseCase(txRunner TxRunner, logRepo repository.InventoryLogRepository) *RestockUseCase {
	return &RestockUseCase{txRunner: txRunner, logRepo: logRepo}
}

// Restock incrementa el stock del producto y añade exactamente una entrada de
// bitácora con el delta, dentro de la misma transacción.
// ErrInvalidInput si la cantidad no es positiva; ErrProductNotFound si el
// producto no existe.
func (uc *RestockUseCase) Restock(ctx context.Context, userID string, in dto.RestockRequest) (*dto.RestockResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var out dto.RestockResponse

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		product, err := productRepo.IncrementStock(in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		entry := &entity.InventoryLogEntry{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			ProductName:   product.Name,
			QuantityDelta: in.Quantity,
			Action:        entity.ActionRestock,
			UserID:        userID,
			CreatedAt:     now,
		}
		if err := logRepo.Create(entry); err != nil {
			return err
		}
		out = dto.RestockResponse{
			Message: "producto repuesto",
			Product: *usecase.ToProductResponse(product),
			Log:     toLogDTO(entry),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logs devuelve la bitácora completa, más reciente primero.
func (uc *RestockUseCase) Logs() ([]dto.InventoryLogEntry, error) {
	entries, err := uc.logRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLogDTO(e))
	}
	return out, nil
}

func toLogDTO(e *entity.InventoryLogEntry) dto.InventoryLogEntry {
	return dto.InventoryLogEntry{
		ID:            e.ID,
		ProductID:     e.ProductID,
		ProductName:   e.ProductName,
		QuantityDelta: e.QuantityDelta,
		Action:        e.Action,
		UserID:        e.UserID,
		UserName:      e.UserName,
		CreatedAt:     e.CreatedAt,
	}
}
