package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	productRepo       repository.ProductRepository
	lowStockThreshold int
}

// NewProductUseCase construye el caso de uso. El umbral de stock bajo viene
// de configuración y es el único lugar donde se define.
func NewProductUseCase(productRepo repository.ProductRepository, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, lowStockThreshold: lowStockThreshold}
}

// Create valida y persiste un producto nuevo.
// ErrInvalidInput si falta nombre, precio o stock, o si son negativos;
// ErrBarcodeTaken si el código de barras ya está en uso.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price == nil || in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Barcode:   in.Barcode,
		Price:     *in.Price,
		Stock:     *in.Stock,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID devuelve un producto o ErrProductNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return ToProductResponse(product), nil
}

// Update aplica una actualización parcial. El stock no se toca por aquí.
// ErrProductNotFound si el id no existe; ErrBarcodeTaken en colisión de barcode.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete elimina un producto sin cascada: las ventas históricas conservan su
// propia copia de nombre y precio.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out, nil
}

// ListLowStock devuelve los productos con stock bajo el umbral configurado.
func (uc *ProductUseCase) ListLowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock(uc.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out, nil
}

// ToProductResponse proyecta un Product a su respuesta HTTP.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Barcode:   p.Barcode,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.Category,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
