package billing

import (
	"context"
	"time"

	"github.com/cloudonetech/console-api/internal/application/dto"
	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/cloudonetech/console-api/internal/application/numbering"
	"github.com/cloudonetech/console-api/internal/domain"
	domainbilling "github.com/cloudonetech/console-api/internal/domain/billing"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/cloudonetech/console-api/pkg/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceUseCase crea facturas directas (sin cotización previa), las consulta
// y administra sus cambios de estado.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	invoiceRepo  repository.InvoiceRepository
	billingCfg   config.BillingConfig
	feed         *events.Feed
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	invoiceRepo repository.InvoiceRepository,
	billingCfg config.BillingConfig,
	feed *events.Feed,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		invoiceRepo:  invoiceRepo,
		billingCfg:   billingCfg,
		feed:         feed,
	}
}

// Create emite una factura directa. Nace UNPAID con vencimiento a
// creación + 15 días, igual que las facturas convertidas.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	currency, err := money.Parse(in.Currency)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	items, err := snapshotItems(uc.serviceRepo, in.Items)
	if err != nil {
		return nil, err
	}
	if err := domainbilling.RecomputeLines(items); err != nil {
		return nil, domain.ErrInvalidInput
	}

	// nil = 5% estándar; un 0 explícito es un documento exento
	vatRate := domainbilling.DefaultVATRate
	if in.VATRate != nil {
		vatRate = *in.VATRate
	}
	if vatRate.IsNegative() || in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	totals := domainbilling.ComputeTotals(items, vatRate, in.Discount)
	if totals.Total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Items:      items,
		Subtotal:   totals.Subtotal,
		VATRate:    vatRate,
		VAT:        totals.VAT,
		Discount:   in.Discount,
		Total:      totals.Total,
		Status:     entity.StatusUnpaid,
		Currency:   currency,
		DueDate:    now.AddDate(0, 0, uc.billingCfg.InvoiceDueDays),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		counterRepo repository.CounterRepository,
		_ repository.QuotationRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		alloc := numbering.NewSequenceAllocator(counterRepo, uc.billingCfg.CounterFloor)
		number, err := alloc.Allocate(ctx, entity.DocTypeInvoice)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number
		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}

	uc.feed.Publish(events.TableInvoices, "insert")
	return toInvoiceResponse(inv), nil
}

// GetByID obtiene una factura con detalle completo.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista facturas (más recientes primero).
func (uc *InvoiceUseCase) List(page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// UpdateStatus aplica un cambio de estado validado por la tabla de
// transiciones. Marcar PAID desde cualquier estado vivo está permitido.
func (uc *InvoiceUseCase) UpdateStatus(id, status string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	next, err := domainbilling.Transition(inv.Status, status)
	if err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	inv.Status = next
	uc.feed.Publish(events.TableInvoices, "update")
	return toInvoiceResponse(inv), nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		QuotationID:   inv.QuotationID,
		CustomerID:    inv.CustomerID,
		Items:         toLineItemResponses(inv.Items),
		Subtotal:      inv.Subtotal,
		VATRate:       inv.VATRate,
		VAT:           inv.VAT,
		Discount:      inv.Discount,
		Total:         inv.Total,
		Status:        inv.Status,
		Currency:      inv.Currency,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
	}
}
