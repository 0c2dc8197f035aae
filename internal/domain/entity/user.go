package entity

import "time"

// Roles válidos para User. Enumeración cerrada: cualquier otro valor se rechaza
// en el guard de acceso.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// ValidRole indica si el rol pertenece a la enumeración cerrada.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCashier
}

// User representa un usuario del sistema (administrador o cajero).
type User struct {
	ID           string
	Name         string
	Username     string // único en todo el sistema
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
