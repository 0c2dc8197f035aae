// Package analytics contiene los casos de uso de reportes agregados del
// punto de venta (resumen del dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el gráfico de torta

// Rangos aceptados por GetSummary.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// DashboardUseCase genera el resumen agregado: ventas de hoy y de la ventana
// pedida, stock total, más vendidos y alerta de stock bajo.
//
// Fuente de datos: ReportRepository (consultas read-only).
// No posee estado propio; todo deriva del catálogo y de las ventas.
type DashboardUseCase struct {
	reportRepo        repository.ReportRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, lowStockThreshold: lowStockThreshold}
}

// GetSummary construye el DashboardSummaryDTO para la ventana pedida
// (today, week o month; vacío equivale a week).
//
// Las consultas se lanzan en paralelo:
//  1. GetSalesTotal(hoy)              → TodaySales
//  2. GetSalesTotal(ventana)          → WindowSales
//  3. GetTopProducts(ventana, top 5)  → BestSeller + TopProducts
//  4. GetTotalStock / GetStockLevels / GetLowStock → inventario puntual
func (uc *DashboardUseCase) GetSummary(ctx context.Context, rangeKey string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	windowStart, err := windowStart(rangeKey, now)
	if err != nil {
		return nil, err
	}
	if rangeKey == "" {
		rangeKey = RangeWeek
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type topResult struct {
		top []repository.BestSellerResult
		err error
	}
	type stockResult struct {
		totalStock int64
		levels     []repository.StockLevelResult
		lowStock   []repository.StockLevelResult
		err        error
	}

	todayCh := make(chan totalResult, 1)
	windowCh := make(chan totalResult, 1)
	topCh := make(chan topResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		total, err := uc.reportRepo.GetSalesTotal(ctx, todayStart, windowEnd)
		todayCh <- totalResult{total, err}
	}()
	go func() {
		total, err := uc.reportRepo.GetSalesTotal(ctx, windowStart, windowEnd)
		windowCh <- totalResult{total, err}
	}()
	go func() {
		top, err := uc.reportRepo.GetTopProducts(ctx, windowStart, windowEnd, dashboardTopProducts)
		topCh <- topResult{top, err}
	}()
	go func() {
		var r stockResult
		r.totalStock, r.err = uc.reportRepo.GetTotalStock(ctx)
		if r.err == nil {
			r.levels, r.err = uc.reportRepo.GetStockLevels(ctx)
		}
		if r.err == nil {
			r.lowStock, r.err = uc.reportRepo.GetLowStock(ctx, uc.lowStockThreshold)
		}
		stockCh <- r
	}()

	today := <-todayCh
	window := <-windowCh
	top := <-topCh
	stock := <-stockCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if window.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de la ventana: %w", window.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", top.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", stock.err)
	}

	bestSeller := "N/A"
	topDTOs := make([]dto.BestSellerDTO, 0, len(top.top))
	for i, t := range top.top {
		if i == 0 {
			bestSeller = t.ProductName
		}
		topDTOs = append(topDTOs, dto.BestSellerDTO{
			ProductID: t.ProductID,
			Name:      t.ProductName,
			Quantity:  t.Quantity,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:    today.total.Round(2),
		WindowSales:   window.total.Round(2),
		Range:         rangeKey,
		TotalStock:    stock.totalStock,
		BestSeller:    bestSeller,
		TopProducts:   topDTOs,
		StockLevels:   toStockDTOs(stock.levels),
		LowStockItems: toStockDTOs(stock.lowStock),
	}, nil
}

// windowStart calcula el inicio de la ventana pedida. week cubre los últimos
// 7 días incluyendo hoy; month, desde el día 1 del mes en curso.
func windowStart(rangeKey string, now time.Time) (time.Time, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch rangeKey {
	case RangeToday:
		return todayStart, nil
	case RangeWeek, "":
		return todayStart.AddDate(0, 0, -6), nil
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, domain.ErrInvalidInput
	}
}

func toStockDTOs(levels []repository.StockLevelResult) []dto.StockLevelDTO {
	out := make([]dto.StockLevelDTO, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.StockLevelDTO{ProductID: l.ProductID, Name: l.ProductName, Stock: l.Stock})
	}
	return out
}
