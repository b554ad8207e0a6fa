package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest body para POST /api/services.
// Price en AED (moneda base del catálogo), nunca negativo.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	IconName    string          `json:"icon_name,omitempty"`
}

// UpdateServiceRequest body para PUT /api/services/:id.
type UpdateServiceRequest = CreateServiceRequest

// ServiceResponse servicio del catálogo en respuestas.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	IconName    string          `json:"icon_name,omitempty"`
}
