package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-api/internal/application/dto"
	"github.com/tu-usuario/pos-api/internal/application/inventory"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

const testAdminID = "00000000-0000-0000-0000-0000000000ad"

// ──────────────────────────────────────────────────────────────────────────────
// Mocks en memoria
// ──────────────────────────────────────────────────────────────────────────────

type mockProductRepo struct {
	products map[string]*entity.Product
}

func (m *mockProductRepo) Create(p *entity.Product) error { m.products[p.ID] = p; return nil }
func (m *mockProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
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

type mockLogRepo struct {
	entries []*entity.InventoryLogEntry
}

func (m *mockLogRepo) Create(e *entity.InventoryLogEntry) error {
	m.entries = append(m.entries, e)
	return nil
}
func (m *mockLogRepo) List() ([]*entity.InventoryLogEntry, error) { return m.entries, nil }

// mockTxRunner: si fn falla, descarta la bitácora escrita dentro de la tx.
type mockTxRunner struct {
	products *mockProductRepo
	logs     *mockLogRepo
}

func (m *mockTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	logsBefore := len(m.logs.entries)
	if err := fn(m.products, m.logs); err != nil {
		m.logs.entries = m.logs.entries[:logsBefore]
		return err
	}
	return nil
}

func newEnv(products ...*entity.Product) (*inventory.RestockUseCase, *mockProductRepo, *mockLogRepo) {
	productRepo := &mockProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	logRepo := &mockLogRepo{}
	tx := &mockTxRunner{products: productRepo, logs: logRepo}
	return inventory.NewRestockUseCase(tx, logRepo), productRepo, logRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Restock
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_IncrementaYRegistraUnaEntrada(t *testing.T) {
	uc, productRepo, logRepo := newEnv(
		&entity.Product{ID: "p1", Name: "Harina", Price: decimal.RequireFromString("2000"), Stock: 2},
	)

	out, err := uc.Restock(context.Background(), testAdminID, dto.RestockRequest{
		ProductID: "p1",
		Quantity:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, productRepo.products["p1"].Stock)
	assert.Equal(t, 12, out.Product.Stock)

	// Exactamente una entrada, con delta positivo y acción restock.
	require.Len(t, logRepo.entries, 1)
	entry := logRepo.entries[0]
	assert.Equal(t, 10, entry.QuantityDelta)
	assert.Equal(t, entity.ActionRestock, entry.Action)
	assert.Equal(t, testAdminID, entry.UserID)
	assert.Equal(t, "p1", entry.ProductID)
	assert.Equal(t, entry.ID, out.Log.ID, "la respuesta incluye la entrada generada")
}

func TestRestock_CantidadNoPositiva(t *testing.T) {
	uc, _, logRepo := newEnv(
		&entity.Product{ID: "p1", Name: "Harina", Stock: 2},
	)

	for _, qty := range []int{0, -5} {
		_, err := uc.Restock(context.Background(), testAdminID, dto.RestockRequest{
			ProductID: "p1",
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, logRepo.entries)
}

func TestRestock_ProductoInexistente(t *testing.T) {
	uc, _, logRepo := newEnv()

	_, err := uc.Restock(context.Background(), testAdminID, dto.RestockRequest{
		ProductID: "no-existe",
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, logRepo.entries, "sin producto no se escribe bitácora")
}

func TestLogs_DevuelveLaBitacora(t *testing.T) {
	uc, _, logRepo := newEnv()
	logRepo.entries = []*entity.InventoryLogEntry{
		{ID: "l1", ProductID: "p1", ProductName: "Harina", QuantityDelta: 10, Action: entity.ActionRestock, UserID: testAdminID},
		{ID: "l2", ProductID: "p1", ProductName: "Harina", QuantityDelta: -2, Action: entity.ActionSale, UserID: "cajero-1", UserName: "Caja"},
	}

	out, err := uc.Logs()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Harina", out[0].ProductName)
	assert.Equal(t, -2, out[1].QuantityDelta)
	assert.Equal(t, "Caja", out[1].UserName)
}
