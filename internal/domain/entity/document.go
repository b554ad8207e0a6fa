package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un documento (cotización o factura).
const (
	StatusDraft     = "DRAFT"     // recién creado, editable
	StatusSent      = "SENT"      // enviado al cliente (o cotización ya convertida)
	StatusPaid      = "PAID"      // pagado en su totalidad
	StatusUnpaid    = "UNPAID"    // emitido, pago pendiente
	StatusPartial   = "PARTIAL"   // pago parcial recibido
	StatusCancelled = "CANCELLED" // anulado; estado terminal
)

// Tipos de documento para el contador de consecutivos.
const (
	DocTypeQuotation = "QTN"
	DocTypeInvoice   = "INV"
)

// LineItem es una línea de documento embebida (no es entidad top-level).
// Congela nombre/descripción/precio del servicio al momento de crear el
// documento; Total siempre debe ser Quantity × UnitPrice.
type LineItem struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Quotation representa una cotización.
// Subtotal/VAT/Total son campos derivados: se recalculan siempre desde las
// líneas, nunca se aceptan del cliente.
type Quotation struct {
	ID          string
	QuoteNumber string // consecutivo "QTN-<n>"
	CustomerID  string
	Items       []LineItem
	Subtotal    decimal.Decimal
	VATRate     decimal.Decimal // porcentaje (5 = 5%)
	VAT         decimal.Decimal
	Discount    decimal.Decimal // monto fijo, no porcentaje
	Total       decimal.Decimal
	Status      string
	Currency    string
	ValidUntil  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Invoice representa una factura. Misma forma que Quotation, más la
// referencia opcional a la cotización origen y DueDate en vez de ValidUntil.
type Invoice struct {
	ID            string
	InvoiceNumber string // consecutivo "INV-<n>"
	QuotationID   string // vacío si la factura no nació de una conversión
	CustomerID    string
	Items         []LineItem
	Subtotal      decimal.Decimal
	VATRate       decimal.Decimal
	VAT           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	Currency      string
	DueDate       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
