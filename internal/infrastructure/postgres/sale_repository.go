package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y sus líneas. La columna seq preserva el orden en
// que llegaron las líneas. Invocar dentro de la misma tx que los decrementos.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, total_amount, payment_method, customer_phone, cashier_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.TotalAmount, sale.PaymentMethod, nullIfEmpty(sale.CustomerPhone),
		sale.CashierID, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	itemQuery := `
		INSERT INTO sale_items (sale_id, seq, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, item := range sale.Items {
		_, err := r.q.Exec(ctx, itemQuery,
			sale.ID, i+1, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas en orden. El nombre del cajero se
// resuelve con LEFT JOIN: queda vacío si el usuario fue borrado.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT s.id, s.total_amount, s.payment_method, COALESCE(s.customer_phone, ''),
		       COALESCE(s.cashier_id::TEXT, ''), COALESCE(u.name, ''), s.created_at
		FROM sales s
		LEFT JOIN users u ON u.id = s.cashier_id
		WHERE s.id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.TotalAmount, &s.PaymentMethod, &s.CustomerPhone,
		&s.CashierID, &s.CashierName, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.loadItems(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return &s, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.total_amount, s.payment_method, COALESCE(s.customer_phone, ''),
		       COALESCE(s.cashier_id::TEXT, ''), COALESCE(u.name, ''), s.created_at
		FROM sales s
		LEFT JOIN users u ON u.id = s.cashier_id
		ORDER BY s.created_at DESC`
	return r.querySales(ctx, query)
}

// ListByDateRange devuelve las ventas con created_at en [from, to].
func (r *SaleRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.total_amount, s.payment_method, COALESCE(s.customer_phone, ''),
		       COALESCE(s.cashier_id::TEXT, ''), COALESCE(u.name, ''), s.created_at
		FROM sales s
		LEFT JOIN users u ON u.id = s.cashier_id
		WHERE s.created_at BETWEEN $1 AND $2
		ORDER BY s.created_at DESC`
	return r.querySales(ctx, query, from, to)
}

// Delete elimina la venta y, por cascada, sus líneas. No repone stock.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepo) querySales(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TotalAmount, &s.PaymentMethod, &s.CustomerPhone,
			&s.CashierID, &s.CashierName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Items = items[s.ID]
	}
	return list, nil
}

// loadItems carga las líneas de un conjunto de ventas en una sola consulta,
// agrupadas por venta y ordenadas por seq.
func (r *SaleRepo) loadItems(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error) {
	query := `
		SELECT sale_id, product_id, product_name, quantity, unit_price
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, seq`
	rows, err := r.q.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("load sale items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var saleID string
		var it entity.SaleItem
		if err := rows.Scan(&saleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items[saleID] = append(items[saleID], it)
	}
	return items, rows.Err()
}
