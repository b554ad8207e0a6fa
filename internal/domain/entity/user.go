package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User representa un miembro del equipo con acceso al sistema.
// El rol ADMIN habilita gestión de equipo y respaldo de datos; el chequeo se
// hace en el servidor, nunca solo en la UI.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt; nunca en claro después de persistir
	Name         string
	Role         string // ADMIN | STAFF
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
