package billing

import (
	"context"
	"time"

	"github.com/cloudonetech/console-api/internal/application/dto"
	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/cloudonetech/console-api/internal/application/numbering"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/cloudonetech/console-api/pkg/config"
	"github.com/google/uuid"
)

// ConvertQuoteUseCase convierte una cotización aceptada en factura cobrable.
type ConvertQuoteUseCase struct {
	txRunner   BillingTxRunner
	billingCfg config.BillingConfig
	feed       *events.Feed
}

// NewConvertQuoteUseCase construye el caso de uso.
func NewConvertQuoteUseCase(txRunner BillingTxRunner, billingCfg config.BillingConfig, feed *events.Feed) *ConvertQuoteUseCase {
	return &ConvertQuoteUseCase{txRunner: txRunner, billingCfg: billingCfg, feed: feed}
}

// Convert ejecuta la conversión cotización → factura como una sola
// transacción:
//
//  1. resuelve la cotización (id inexistente → ErrNotFound, nunca no-op
//     silencioso);
//  2. asigna el consecutivo INV;
//  3. inserta la factura copiando verbatim items/subtotal/vat/vatRate/
//     discount/total/currency del momento de la conversión, con estado
//     forzado a UNPAID y vencimiento = creación + 15 días;
//  4. marca la cotización origen como SENT.
//
// Si cualquier paso falla, no queda ningún efecto: ni factura, ni número
// consumido, ni cotización tocada.
func (uc *ConvertQuoteUseCase) Convert(ctx context.Context, quoteID string) (*dto.InvoiceResponse, error) {
	if quoteID == "" {
		return nil, domain.ErrInvalidInput
	}

	var inv *entity.Invoice
	err := uc.txRunner.Run(ctx, func(
		counterRepo repository.CounterRepository,
		quotationRepo repository.QuotationRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		quote, err := quotationRepo.GetByID(quoteID)
		if err != nil {
			return err
		}
		if quote == nil {
			return domain.ErrNotFound
		}

		alloc := numbering.NewSequenceAllocator(counterRepo, uc.billingCfg.CounterFloor)
		number, err := alloc.Allocate(ctx, entity.DocTypeInvoice)
		if err != nil {
			return err
		}

		currency := quote.Currency
		if currency == "" {
			currency = money.AED
		}

		now := time.Now()
		inv = &entity.Invoice{
			ID:            uuid.New().String(),
			InvoiceNumber: number,
			QuotationID:   quote.ID,
			CustomerID:    quote.CustomerID,
			Items:         quote.Items,
			Subtotal:      quote.Subtotal,
			VATRate:       quote.VATRate,
			VAT:           quote.VAT,
			Discount:      quote.Discount,
			Total:         quote.Total,
			Status:        entity.StatusUnpaid,
			Currency:      currency,
			DueDate:       now.AddDate(0, 0, uc.billingCfg.InvoiceDueDays),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		return quotationRepo.UpdateStatus(quote.ID, entity.StatusSent)
	})
	if err != nil {
		return nil, err
	}

	uc.feed.Publish(events.TableInvoices, "insert")
	uc.feed.Publish(events.TableQuotations, "update")
	return toInvoiceResponse(inv), nil
}
