package entity

import "time"

// Customer representa un cliente de la agencia (CRM).
// TRN: Tax Registration Number (Emiratos Árabes Unidos), opcional.
type Customer struct {
	ID          string
	Name        string
	CompanyName string
	Phone       string
	Email       string
	Address     string
	TRN         string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
