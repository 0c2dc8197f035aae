package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Ventas de hoy (00:00 – 23:59), siempre presente sea cual sea el rango.
	TodaySales decimal.Decimal `json:"today_sales"`

	// Ventas dentro de la ventana pedida (today / week / month).
	WindowSales decimal.Decimal `json:"window_sales"`
	Range       string          `json:"range"`

	// Stock actual sumado de todos los productos (puntual, no ventaneado).
	TotalStock int64 `json:"total_stock"`

	// Producto más vendido de la ventana; "N/A" si no hubo ventas.
	BestSeller string `json:"best_seller"`

	// Top 5 por cantidad vendida en la ventana (gráfico de torta).
	TopProducts []BestSellerDTO `json:"top_products"`

	// Stock por producto (gráfico de barras).
	StockLevels []StockLevelDTO `json:"stock_levels"`

	// Productos bajo el umbral de reposición, independiente de la ventana.
	LowStockItems []StockLevelDTO `json:"low_stock_items"`
}

// BestSellerDTO producto con su cantidad vendida en la ventana.
type BestSellerDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"qty"`
}

// StockLevelDTO nivel de stock de un producto.
type StockLevelDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}
