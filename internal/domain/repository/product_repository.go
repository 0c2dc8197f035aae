package repository

import "github.com/tu-usuario/pos-api/internal/domain/entity"

// ProductRepository puerto de persistencia para el catálogo.
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	ListLowStock(threshold int) ([]*entity.Product, error)
	Delete(id string) error

	// DecrementStock ejecuta el decremento condicional atómico:
	//   UPDATE products SET stock = stock - qty WHERE id = $1 AND stock >= qty
	// Devuelve el producto ya rebajado, o (nil, nil) si ninguna fila coincidió
	// (producto inexistente o stock insuficiente; el caller distingue).
	DecrementStock(productID string, qty int) (*entity.Product, error)

	// IncrementStock suma qty al stock y devuelve el producto actualizado,
	// o (nil, nil) si el producto no existe.
	IncrementStock(productID string, qty int) (*entity.Product, error)
}
