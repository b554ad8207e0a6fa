package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem representa un servicio vendible del catálogo.
// Price está denominado en la moneda base (AED); nunca negativo.
// Los documentos guardan snapshots de nombre/precio, así que el catálogo
// puede cambiar sin afectar documentos ya emitidos.
type ServiceItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
	IconName    string // hint de ícono para el cliente (ej: "Monitor", "Code")
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
