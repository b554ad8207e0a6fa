package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen del dashboard.
//
// TotalRevenue y PendingPayments se calculan siempre normalizados a AED
// (moneda base) y luego se convierten a la moneda de display solicitada;
// Currency indica en qué moneda vienen expresados.
type DashboardStatsDTO struct {
	TotalCustomers  int             `json:"total_customers"`
	TotalQuotations int             `json:"total_quotations"`
	TotalInvoices   int             `json:"total_invoices"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`    // facturas PAID + PARTIAL
	PendingPayments decimal.Decimal `json:"pending_payments"` // facturas UNPAID + PARTIAL
	Currency        string          `json:"currency"`
}
