// Package analytics contiene el caso de uso del resumen del dashboard:
// conteos por colección y métricas financieras agregadas.
package analytics

import (
	"context"
	"fmt"

	"github.com/cloudonetech/console-api/internal/application/dto"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DashboardUseCase genera el resumen del dashboard.
//
// Las métricas monetarias cruzan facturas en monedas mixtas: cada monto se
// normaliza primero a AED (moneda base) y la suma se convierte al final a la
// moneda de display solicitada. Nunca se suman montos en monedas distintas.
type DashboardUseCase struct {
	customerRepo  repository.CustomerRepository
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	customerRepo repository.CustomerRepository,
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		customerRepo:  customerRepo,
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
	}
}

// GetStats construye el DashboardStatsDTO con los montos expresados en
// displayCurrency (vacío = AED).
//
// Cuatro consultas en paralelo: conteo de clientes, conteo de cotizaciones,
// conteo de facturas y el listado completo de facturas para las métricas.
func (uc *DashboardUseCase) GetStats(ctx context.Context, displayCurrency string) (*dto.DashboardStatsDTO, error) {
	currency, err := money.Parse(displayCurrency)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var (
		totalCustomers  int
		totalQuotations int
		totalInvoices   int
		invoices        []*entity.Invoice
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalCustomers, err = uc.customerRepo.Count()
		return err
	})
	g.Go(func() error {
		var err error
		totalQuotations, err = uc.quotationRepo.Count()
		return err
	})
	g.Go(func() error {
		var err error
		totalInvoices, err = uc.invoiceRepo.Count()
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = uc.invoiceRepo.ListAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// Ingresos: facturas PAID + PARTIAL. Pendiente: UNPAID + PARTIAL.
	// (PARTIAL cuenta en ambos lados; no hay monto de abono parcial, así que
	// cada lado usa el total de la factura.)
	revenueAED := decimal.Zero
	pendingAED := decimal.Zero
	for _, inv := range invoices {
		amountAED := money.NormalizeToBase(inv.Total, inv.Currency)
		switch inv.Status {
		case entity.StatusPaid:
			revenueAED = revenueAED.Add(amountAED)
		case entity.StatusPartial:
			revenueAED = revenueAED.Add(amountAED)
			pendingAED = pendingAED.Add(amountAED)
		case entity.StatusUnpaid:
			pendingAED = pendingAED.Add(amountAED)
		}
	}

	revenue := money.ToDisplay(revenueAED, money.AED, currency)
	pending := money.ToDisplay(pendingAED, money.AED, currency)

	return &dto.DashboardStatsDTO{
		TotalCustomers:  totalCustomers,
		TotalQuotations: totalQuotations,
		TotalInvoices:   totalInvoices,
		TotalRevenue:    revenue.Round(2),
		PendingPayments: pending.Round(2),
		Currency:        currency,
	}, nil
}
