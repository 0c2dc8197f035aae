package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-api/internal/domain"
	"github.com/tu-usuario/pos-api/internal/domain/entity"
	"github.com/tu-usuario/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Barcode vacío se guarda como NULL para
// no chocar con el índice único.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, barcode, price, stock, category, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Barcode), product.Price, product.Stock,
		product.Category, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBarcodeTaken
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(barcode, ''), price, stock, category, image_url, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza nombre, barcode, precio, categoría e imagen. El stock no
// se toca por aquí: se mueve solo vía DecrementStock/IncrementStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, barcode = $3, price = $4, category = $5, image_url = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Barcode), product.Price,
		product.Category, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBarcodeTaken
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List devuelve el catálogo completo, más reciente primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(barcode, ''), price, stock, category, image_url, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListLowStock devuelve los productos con stock < threshold, los más cortos primero.
func (r *ProductRepo) ListLowStock(threshold int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(barcode, ''), price, stock, category, image_url, created_at, updated_at
		FROM products WHERE stock < $1 ORDER BY stock ASC, name ASC`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina un producto por ID. Sin cascada: las ventas históricas
// conservan sus propias copias de nombre y precio.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DecrementStock ejecuta el decremento condicional atómico. La condición
// stock >= qty dentro del UPDATE cierra la carrera check-then-act: dos ventas
// concurrentes quedan serializadas por el lock de fila de PostgreSQL.
// Devuelve (nil, nil) si ninguna fila coincidió.
func (r *ProductRepo) DecrementStock(productID string, qty int) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2
		RETURNING id, name, COALESCE(barcode, ''), price, stock, category, image_url, created_at, updated_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, productID, qty).Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	return &p, nil
}

// IncrementStock suma qty al stock. Devuelve (nil, nil) si el producto no existe.
func (r *ProductRepo) IncrementStock(productID string, qty int) (*entity.Product, error) {
	query := `
		UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, COALESCE(barcode, ''), price, stock, category, image_url, created_at, updated_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, productID, qty).Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("increment stock: %w", err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte "" en NULL (para columnas únicas opcionales).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
