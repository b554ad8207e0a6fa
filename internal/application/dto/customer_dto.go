package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
// Solo name es obligatorio; trn y company_name son opcionales (clientes
// particulares no tienen registro fiscal).
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	TRN         string `json:"trn,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Mismo shape que la
// creación; el id es inmutable y viaja en la ruta.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	TRN         string    `json:"trn,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
