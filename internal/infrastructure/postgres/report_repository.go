package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y los reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotal suma los totales de venta dentro de la ventana.
// COALESCE devuelve cero si no hay filas (ventana sin ventas).
func (r *ReportRepo) GetSalesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM sales
	WHERE created_at BETWEEN $1 AND $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetSalesTotal: %w", err)
	}
	return total, nil
}

// GetTotalStock suma el stock actual de todos los productos.
func (r *ReportRepo) GetTotalStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("reports.GetTotalStock: %w", err)
	}
	return total, nil
}

// GetTopProducts devuelve los `limit` productos con mayor cantidad vendida en
// la ventana. Los empates se desempatan por product_id ascendente para que el
// ranking sea determinista entre ejecuciones.
// El nombre sale de la copia denormalizada en sale_items: el ranking sigue
// funcionando para productos ya eliminados del catálogo.
func (r *ReportRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.BestSellerResult, error) {
	const query = `
	SELECT i.product_id::TEXT, MAX(i.product_name) AS product_name, SUM(i.quantity) AS qty
	FROM sale_items i
	JOIN sales s ON s.id = i.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	GROUP BY i.product_id
	ORDER BY qty DESC, i.product_id ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.BestSellerResult
	for rows.Next() {
		var row repository.BestSellerResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetStockLevels devuelve el stock actual por producto (gráfico de barras).
func (r *ReportRepo) GetStockLevels(ctx context.Context) ([]repository.StockLevelResult, error) {
	const query = `SELECT id, name, stock FROM products ORDER BY name ASC`
	return r.queryStockLevels(ctx, query)
}

// GetLowStock devuelve los productos con stock < threshold, los más cortos primero.
func (r *ReportRepo) GetLowStock(ctx context.Context, threshold int) ([]repository.StockLevelResult, error) {
	const query = `SELECT id, name, stock FROM products WHERE stock < $1 ORDER BY stock ASC, name ASC`
	return r.queryStockLevels(ctx, query, threshold)
}

func (r *ReportRepo) queryStockLevels(ctx context.Context, query string, args ...any) ([]repository.StockLevelResult, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.stockLevels: %w", err)
	}
	defer rows.Close()

	var results []repository.StockLevelResult
	for rows.Next() {
		var row repository.StockLevelResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Stock); err != nil {
			return nil, fmt.Errorf("reports.stockLevels scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
