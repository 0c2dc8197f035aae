package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrSaleNotFound       = errors.New("venta no encontrada")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya existe")
	ErrBarcodeTaken       = errors.New("el código de barras ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSelfDeletion       = errors.New("un administrador no puede eliminar su propia cuenta")
	ErrLastAdmin          = errors.New("no se puede eliminar el último administrador")
)

// InsufficientStockError identifica el producto que hizo fallar una venta.
// errors.Is(err, ErrInsufficientStock) sigue funcionando vía Unwrap.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: solicitado %d, disponible %d", e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
