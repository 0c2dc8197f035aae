package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BestSellerResult producto con su cantidad total vendida en una ventana.
type BestSellerResult struct {
	ProductID   string
	ProductName string
	Quantity    int64
}

// StockLevelResult nivel de stock puntual de un producto.
type StockLevelResult struct {
	ProductID   string
	ProductName string
	Stock       int
}

// ReportRepository consultas de solo lectura para el dashboard y los reportes.
type ReportRepository interface {
	// GetSalesTotal suma los totales de venta dentro de la ventana [from, to].
	// Devuelve cero si no hay ventas.
	GetSalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// GetTotalStock suma el stock actual de todos los productos (puntual,
	// no ventaneado).
	GetTotalStock(ctx context.Context) (int64, error)
	// GetTopProducts devuelve los `limit` productos con mayor cantidad vendida
	// dentro de la ventana, orden descendente; empates desempatados por
	// product_id ascendente para que el ranking sea determinista.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]BestSellerResult, error)
	// GetStockLevels devuelve el stock actual de cada producto.
	GetStockLevels(ctx context.Context) ([]StockLevelResult, error)
	// GetLowStock devuelve los productos con stock < threshold.
	GetLowStock(ctx context.Context, threshold int) ([]StockLevelResult, error)
}
