package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-api/internal/application/inventory"
	"github.com/tu-usuario/pos-api/internal/application/sales"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and sales.SaleTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback (reposiciones: stock + bitácora).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	logRepo := NewInventoryLogRepository(tx)

	if err := fn(productRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos que necesita CreateSale:
// decrementos de stock, venta con sus líneas y bitácora, todo o nada.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	logRepo := NewInventoryLogRepository(tx)

	if err := fn(productRepo, saleRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
