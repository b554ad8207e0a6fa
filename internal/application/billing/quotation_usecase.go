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

// QuotationUseCase crea y consulta cotizaciones.
type QuotationUseCase struct {
	txRunner      BillingTxRunner
	customerRepo  repository.CustomerRepository
	serviceRepo   repository.ServiceRepository
	quotationRepo repository.QuotationRepository
	billingCfg    config.BillingConfig
	feed          *events.Feed
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	quotationRepo repository.QuotationRepository,
	billingCfg config.BillingConfig,
	feed *events.Feed,
) *QuotationUseCase {
	return &QuotationUseCase{
		txRunner:      txRunner,
		customerRepo:  customerRepo,
		serviceRepo:   serviceRepo,
		quotationRepo: quotationRepo,
		billingCfg:    billingCfg,
		feed:          feed,
	}
}

// snapshotItems congela las líneas desde el catálogo: nombre, descripción y
// precio vigente al momento de crear el documento. Si el catálogo cambia
// después, el documento no se mueve (es un registro histórico inmutable).
func snapshotItems(serviceRepo repository.ServiceRepository, in []dto.LineItemRequest) ([]entity.LineItem, error) {
	items := make([]entity.LineItem, 0, len(in))
	for _, req := range in {
		if req.ServiceID == "" {
			return nil, domain.ErrInvalidInput
		}
		svc, err := serviceRepo.GetByID(req.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, domain.ErrNotFound
		}
		// nil = precio de catálogo; un cero explícito es una línea sin costo
		unitPrice := svc.Price
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		items = append(items, entity.LineItem{
			ID:          uuid.New().String(),
			ServiceID:   svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Quantity:    req.Quantity,
			UnitPrice:   unitPrice,
		})
	}
	return items, nil
}

// Create valida y construye la cotización, asigna el consecutivo y la
// persiste en una sola transacción. Siempre nace en DRAFT.
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Referencia de cliente válida (fuera de la tx, solo lectura)
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
	q := &entity.Quotation{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Items:      items,
		Subtotal:   totals.Subtotal,
		VATRate:    vatRate,
		VAT:        totals.VAT,
		Discount:   in.Discount,
		Total:      totals.Total,
		Status:     entity.StatusDraft,
		Currency:   currency,
		ValidUntil: now.AddDate(0, 0, uc.billingCfg.QuoteValidDays),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Consecutivo + insert en un solo commit: un insert fallido no consume número.
	err = uc.txRunner.Run(ctx, func(
		counterRepo repository.CounterRepository,
		quotationRepo repository.QuotationRepository,
		_ repository.InvoiceRepository,
	) error {
		alloc := numbering.NewSequenceAllocator(counterRepo, uc.billingCfg.CounterFloor)
		number, err := alloc.Allocate(ctx, entity.DocTypeQuotation)
		if err != nil {
			return err
		}
		q.QuoteNumber = number
		return quotationRepo.Create(q)
	})
	if err != nil {
		return nil, err
	}

	uc.feed.Publish(events.TableQuotations, "insert")
	return toQuotationResponse(q), nil
}

// GetByID obtiene una cotización con detalle completo.
func (uc *QuotationUseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return toQuotationResponse(q), nil
}

// List lista cotizaciones (más recientes primero).
func (uc *QuotationUseCase) List(page dto.PageRequest) ([]*dto.QuotationResponse, error) {
	page.DefaultPage()
	list, err := uc.quotationRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuotationResponse(q))
	}
	return out, nil
}

// UpdateStatus aplica un cambio de estado validado por la tabla de
// transiciones (CANCELLED terminal, DRAFT no se re-entra).
func (uc *QuotationUseCase) UpdateStatus(id, status string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	next, err := domainbilling.Transition(q.Status, status)
	if err != nil {
		return nil, err
	}
	if err := uc.quotationRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	q.Status = next
	uc.feed.Publish(events.TableQuotations, "update")
	return toQuotationResponse(q), nil
}

func toLineItemResponses(items []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LineItemResponse{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	return &dto.QuotationResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		CustomerID:  q.CustomerID,
		Items:       toLineItemResponses(q.Items),
		Subtotal:    q.Subtotal,
		VATRate:     q.VATRate,
		VAT:         q.VAT,
		Discount:    q.Discount,
		Total:       q.Total,
		Status:      q.Status,
		Currency:    q.Currency,
		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
	}
}
