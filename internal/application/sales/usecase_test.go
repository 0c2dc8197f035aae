package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/application/sales"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

const testCashierID = "00000000-0000-0000-0000-0000000000aa"

// ──────────────────────────────────────────────────────────────────────────────
// Mocks en memoria: catálogo, ventas, bitácora y runner transaccional
// ──────────────────────────────────────────────────────────────────────────────

type mockProductRepo struct {
	products map[string]*entity.Product
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(p *entity.Product) error { m.products[p.ID] = p; return nil }
func (m *mockProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (m *mockProductRepo) Update(p *entity.Product) error { m.products[p.ID] = p; return nil }
func (m *mockProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}
func (m *mockProductRepo) ListLowStock(threshold int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m *mockProductRepo) Delete(id string) error { delete(m.products, id); return nil }

// DecrementStock reproduce la semántica del UPDATE condicional: (nil, nil)
// cuando el producto no existe o el stock no alcanza.
func (m *mockProductRepo) DecrementStock(productID string, qty int) (*entity.Product, error) {
	p, ok := m.products[productID]
	if !ok || p.Stock < qty {
		return nil, nil
	}
	p.Stock -= qty
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) IncrementStock(productID string, qty int) (*entity.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, nil
	}
	p.Stock += qty
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) snapshot() map[string]int {
	s := make(map[string]int, len(m.products))
	for id, p := range m.products {
		s[id] = p.Stock
	}
	return s
}

func (m *mockProductRepo) restore(s map[string]int) {
	for id, stock := range s {
		if p, ok := m.products[id]; ok {
			p.Stock = stock
		}
	}
}

type mockSaleRepo struct {
	sales []*entity.Sale
}

func (m *mockSaleRepo) Create(s *entity.Sale) error { m.sales = append(m.sales, s); return nil }
func (m *mockSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range m.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (m *mockSaleRepo) List(_ context.Context) ([]*entity.Sale, error) { return m.sales, nil }
func (m *mockSaleRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if !s.CreatedAt.Before(from) && !s.CreatedAt.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *mockSaleRepo) Delete(_ context.Context, id string) error {
	for i, s := range m.sales {
		if s.ID == id {
			m.sales = append(m.sales[:i], m.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrSaleNotFound
}

type mockLogRepo struct {
	entries []*entity.InventoryLogEntry
}

func (m *mockLogRepo) Create(e *entity.InventoryLogEntry) error {
	m.entries = append(m.entries, e)
	return nil
}
func (m *mockLogRepo) List() ([]*entity.InventoryLogEntry, error) { return m.entries, nil }

// mockTxRunner emula la transacción: si fn falla, deshace los decrementos y
// descarta la venta y bitácora escritas dentro de la tx.
type mockTxRunner struct {
	products *mockProductRepo
	sales    *mockSaleRepo
	logs     *mockLogRepo
}

func (m *mockTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	stocks := m.products.snapshot()
	salesBefore := len(m.sales.sales)
	logsBefore := len(m.logs.entries)
	if err := fn(m.products, m.sales, m.logs); err != nil {
		m.products.restore(stocks)
		m.sales.sales = m.sales.sales[:salesBefore]
		m.logs.entries = m.logs.entries[:logsBefore]
		return err
	}
	return nil
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newEnv(products ...*entity.Product) (*sales.SaleUseCase, *mockProductRepo, *mockSaleRepo, *mockLogRepo) {
	productRepo := newMockProductRepo(products...)
	saleRepo := &mockSaleRepo{}
	logRepo := &mockLogRepo{}
	tx := &mockTxRunner{products: productRepo, sales: saleRepo, logs: logRepo}
	return sales.NewSaleUseCase(tx, saleRepo), productRepo, saleRepo, logRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_TotalConPrecioDelServidor(t *testing.T) {
	uc, productRepo, saleRepo, logRepo := newEnv(
		&entity.Product{ID: "p1", Name: "Arroz 1kg", Price: price("100.00"), Stock: 10},
		&entity.Product{ID: "p2", Name: "Aceite 1L", Price: price("250.50"), Stock: 4},
	)

	// El cliente manda un precio manipulado; el servidor lo ignora.
	fake := price("0.01")
	out, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2, Price: &fake},
			{ProductID: "p2", Quantity: 1},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	// 2×100.00 + 1×250.50
	assert.True(t, out.TotalAmount.Equal(price("450.50")),
		"total = %s, esperaba 450.50", out.TotalAmount)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Arroz 1kg", out.Items[0].ProductName)
	assert.True(t, out.Items[0].UnitPrice.Equal(price("100.00")),
		"el precio viene del catálogo, no del cliente")

	// Stock rebajado y venta persistida.
	assert.Equal(t, 8, productRepo.products["p1"].Stock)
	assert.Equal(t, 3, productRepo.products["p2"].Stock)
	require.Len(t, saleRepo.sales, 1)

	// Una entrada de bitácora por línea, con delta negativo y acción sale.
	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, -2, logRepo.entries[0].QuantityDelta)
	assert.Equal(t, entity.ActionSale, logRepo.entries[0].Action)
	assert.Equal(t, testCashierID, logRepo.entries[0].UserID)
}

// Stock 5, se piden 6: la venta completa se rechaza y nada queda persistido.
func TestCreateSale_StockInsuficienteAbortaTodo(t *testing.T) {
	uc, productRepo, saleRepo, logRepo := newEnv(
		&entity.Product{ID: "p1", Name: "Leche", Price: price("80"), Stock: 20},
		&entity.Product{ID: "p2", Name: "Pan", Price: price("30"), Stock: 5},
	)

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 3}, // esta línea pasa...
			{ProductID: "p2", Quantity: 6}, // ...esta no: solo hay 5
		},
		PaymentMethod: entity.PaymentCash,
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "Pan", stockErr.ProductName, "el error nombra el producto corto")
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)

	// Rollback total: ni venta, ni bitácora, ni decremento de la primera línea.
	assert.Empty(t, saleRepo.sales)
	assert.Empty(t, logRepo.entries)
	assert.Equal(t, 20, productRepo.products["p1"].Stock)
	assert.Equal(t, 5, productRepo.products["p2"].Stock)
}

// Ventas secuenciales sobre stock 5: 3 + 2 pasan, la tercera por 1 falla.
func TestCreateSale_AritmeticaSecuencial(t *testing.T) {
	uc, productRepo, _, _ := newEnv(
		&entity.Product{ID: "p1", Name: "Café", Price: price("500"), Stock: 5},
	)
	ctx := context.Background()

	sell := func(qty int) error {
		_, err := uc.CreateSale(ctx, testCashierID, dto.CreateSaleRequest{
			Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: qty}},
			PaymentMethod: entity.PaymentCash,
		})
		return err
	}

	require.NoError(t, sell(3))
	require.NoError(t, sell(2))
	assert.Equal(t, 0, productRepo.products["p1"].Stock)

	err := sell(1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, productRepo.products["p1"].Stock, "el stock nunca baja de cero")
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	uc, _, saleRepo, _ := newEnv()

	_, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "no-existe", Quantity: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, saleRepo.sales)
}

func TestCreateSale_Validaciones(t *testing.T) {
	uc, _, _, _ := newEnv(
		&entity.Product{ID: "p1", Name: "Café", Price: price("500"), Stock: 5},
	)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateSaleRequest
	}{
		{"sin items", dto.CreateSaleRequest{PaymentMethod: entity.PaymentCash}},
		{"cantidad cero", dto.CreateSaleRequest{
			Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}},
			PaymentMethod: entity.PaymentCash,
		}},
		{"método de pago desconocido", dto.CreateSaleRequest{
			Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
			PaymentMethod: "cheque",
		}},
		{"mobile-money sin teléfono", dto.CreateSaleRequest{
			Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
			PaymentMethod: entity.PaymentMobileMoney,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateSale(ctx, testCashierID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateSale_MobileMoneyConTelefono(t *testing.T) {
	uc, _, _, _ := newEnv(
		&entity.Product{ID: "p1", Name: "Café", Price: price("500"), Stock: 5},
	)

	out, err := uc.CreateSale(context.Background(), testCashierID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: entity.PaymentMobileMoney,
		CustomerPhone: "+57 300 123 4567",
	})
	require.NoError(t, err)
	assert.Equal(t, "+57 300 123 4567", out.CustomerPhone)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NoExiste(t *testing.T) {
	uc, _, _, _ := newEnv()
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestGetReport_RangoInvertido(t *testing.T) {
	uc, _, _, _ := newEnv()
	from := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err := uc.GetReport(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Eliminar un producto no borra las ventas históricas que lo referencian:
// las líneas son copias (nombre y precio denormalizados) y la venta sigue
// resolviéndose completa por id aunque el lookup del producto ya falle.
func TestGetByID_ResuelveConProductoEliminado(t *testing.T) {
	uc, productRepo, _, _ := newEnv(
		&entity.Product{ID: "p1", Name: "Arroz 1kg", Price: price("100.00"), Stock: 10},
	)
	ctx := context.Background()

	created, err := uc.CreateSale(ctx, testCashierID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	require.NoError(t, productRepo.Delete("p1"))
	gone, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	require.Nil(t, gone, "el producto ya no existe en el catálogo")

	out, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Arroz 1kg", out.Items[0].ProductName)
	assert.True(t, out.Items[0].UnitPrice.Equal(price("100.00")))
	assert.True(t, out.TotalAmount.Equal(price("200.00")))
}

// Eliminar una venta no repone el stock de sus líneas.
func TestDelete_NoReponeStock(t *testing.T) {
	uc, productRepo, saleRepo, _ := newEnv(
		&entity.Product{ID: "p1", Name: "Café", Price: price("500"), Stock: 5},
	)
	ctx := context.Background()

	out, err := uc.CreateSale(ctx, testCashierID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	require.Equal(t, 3, productRepo.products["p1"].Stock)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.Empty(t, saleRepo.sales)
	assert.Equal(t, 3, productRepo.products["p1"].Stock, "el borrado es solo del registro")
}
