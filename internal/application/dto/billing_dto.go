package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de documento en la creación. El servidor congela el
// snapshot (nombre/descripción/precio) desde el catálogo; unit_price es un
// puntero para distinguir ausente (se toma el precio vigente del servicio) de
// un cero explícito (línea sin costo).
type LineItemRequest struct {
	ServiceID string           `json:"service_id"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateQuotationRequest body para POST /api/quotations.
// Subtotal/vat/total NO se aceptan: son derivados y se recalculan siempre.
// vat_rate es un puntero para distinguir ausente (5% estándar) de un 0%
// explícito (documento exento).
type CreateQuotationRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []LineItemRequest `json:"items"`
	VATRate    *decimal.Decimal  `json:"vat_rate,omitempty"` // porcentaje; nil = 5% estándar
	Discount   decimal.Decimal   `json:"discount,omitempty"` // monto fijo
	Currency   string            `json:"currency,omitempty"` // AED | INR; vacío = AED
}

// CreateInvoiceRequest body para POST /api/invoices (factura directa, sin
// cotización previa). Mismo shape que la cotización.
type CreateInvoiceRequest = CreateQuotationRequest

// UpdateStatusRequest body para PATCH /api/{quotations|invoices}/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// LineItemResponse línea en respuestas (snapshot congelado).
type LineItemResponse struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// QuotationResponse cotización con detalle completo.
type QuotationResponse struct {
	ID          string             `json:"id"`
	QuoteNumber string             `json:"quote_number"`
	CustomerID  string             `json:"customer_id"`
	Items       []LineItemResponse `json:"items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	VATRate     decimal.Decimal    `json:"vat_rate"`
	VAT         decimal.Decimal    `json:"vat"`
	Discount    decimal.Decimal    `json:"discount"`
	Total       decimal.Decimal    `json:"total"`
	Status      string             `json:"status"`
	Currency    string             `json:"currency"`
	ValidUntil  time.Time          `json:"valid_until"`
	CreatedAt   time.Time          `json:"created_at"`
}

// InvoiceResponse factura con detalle completo.
type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	QuotationID   string             `json:"quotation_id,omitempty"`
	CustomerID    string             `json:"customer_id"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	VATRate       decimal.Decimal    `json:"vat_rate"`
	VAT           decimal.Decimal    `json:"vat"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	Currency      string             `json:"currency"`
	DueDate       time.Time          `json:"due_date"`
	CreatedAt     time.Time          `json:"created_at"`
}
