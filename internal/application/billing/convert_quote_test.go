package billing_test

import (
	"context"
	"testing"
	"time"

	appbilling "github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Conversión cotización → factura
// ──────────────────────────────────────────────────────────────────────────────

func seedQuote() *entity.Quotation {
	now := time.Now().Add(-48 * time.Hour)
	return &entity.Quotation{
		ID:          "q-1",
		QuoteNumber: "QTN-1000",
		CustomerID:  "c-1",
		Items: []entity.LineItem{
			{ID: "li-1", ServiceID: "s-1", Name: "Desarrollo web", Quantity: dec(2), UnitPrice: dec(1000), Total: dec(2000)},
		},
		Subtotal:   dec(2000),
		VATRate:    dec(5),
		VAT:        dec(100),
		Discount:   dec(50),
		Total:      dec(2050),
		Status:     entity.StatusDraft,
		Currency:   money.AED,
		ValidUntil: now.AddDate(0, 0, 30),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestConvertQuote_CopiaVerbatimYVencimiento(t *testing.T) {
	quote := seedQuote()
	quotes := newFakeQuotationRepo(quote)
	invoices := newFakeInvoiceRepo()
	runner := &fakeTxRunner{
		counterRepo:   newFakeCounterRepo(),
		quotationRepo: quotes,
		invoiceRepo:   invoices,
	}
	uc := appbilling.NewConvertQuoteUseCase(runner, testBillingCfg, newTestFeed())

	before := time.Now()
	resp, err := uc.Convert(context.Background(), quote.ID)
	after := time.Now()
	require.NoError(t, err)
	require.NotNil(t, resp)

	// El primer consecutivo INV arranca en el piso
	assert.Equal(t, "INV-1000", resp.InvoiceNumber)
	assert.Equal(t, quote.ID, resp.QuotationID)
	assert.Equal(t, quote.CustomerID, resp.CustomerID)

	// La factura copia los montos del momento de la conversión, sin recalcular
	assert.True(t, resp.Subtotal.Equal(dec(2000)), "subtotal copiado verbatim")
	assert.True(t, resp.VATRate.Equal(dec(5)))
	assert.True(t, resp.VAT.Equal(dec(100)))
	assert.True(t, resp.Discount.Equal(dec(50)))
	assert.True(t, resp.Total.Equal(dec(2050)))
	assert.Equal(t, money.AED, resp.Currency)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Desarrollo web", resp.Items[0].Name)
	assert.True(t, resp.Items[0].Total.Equal(dec(2000)))

	// Nace UNPAID con vencimiento exacto a creación + 15 días
	assert.Equal(t, entity.StatusUnpaid, resp.Status)
	assert.False(t, resp.DueDate.Before(before.AddDate(0, 0, 15)))
	assert.False(t, resp.DueDate.After(after.AddDate(0, 0, 15)))

	// La cotización origen queda SENT
	stored, err := quotes.GetByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, stored.Status)

	// Y la factura quedó persistida
	persisted, err := invoices.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
}

func TestConvertQuote_MonedaVaciaNormalizaABase(t *testing.T) {
	quote := seedQuote()
	quote.Currency = ""
	runner := &fakeTxRunner{
		counterRepo:   newFakeCounterRepo(),
		quotationRepo: newFakeQuotationRepo(quote),
		invoiceRepo:   newFakeInvoiceRepo(),
	}
	uc := appbilling.NewConvertQuoteUseCase(runner, testBillingCfg, newTestFeed())

	resp, err := uc.Convert(context.Background(), quote.ID)
	require.NoError(t, err)
	assert.Equal(t, money.AED, resp.Currency)
}

func TestConvertQuote_IDInexistenteEsNotFound(t *testing.T) {
	runner := &fakeTxRunner{
		counterRepo:   newFakeCounterRepo(),
		quotationRepo: newFakeQuotationRepo(),
		invoiceRepo:   newFakeInvoiceRepo(),
	}
	uc := appbilling.NewConvertQuoteUseCase(runner, testBillingCfg, newTestFeed())

	resp, err := uc.Convert(context.Background(), "no-existe")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sin cotización no se consume ningún consecutivo
	current, err := runner.counterRepo.Current(context.Background(), entity.DocTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)
}

func TestConvertQuote_IDVacioEsInvalido(t *testing.T) {
	runner := &fakeTxRunner{
		counterRepo:   newFakeCounterRepo(),
		quotationRepo: newFakeQuotationRepo(),
		invoiceRepo:   newFakeInvoiceRepo(),
	}
	uc := appbilling.NewConvertQuoteUseCase(runner, testBillingCfg, newTestFeed())

	_, err := uc.Convert(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConvertQuote_ConversionesSucesivasNumeranContiguo(t *testing.T) {
	q1 := seedQuote()
	q2 := seedQuote()
	q2.ID = "q-2"
	q2.QuoteNumber = "QTN-1001"
	runner := &fakeTxRunner{
		counterRepo:   newFakeCounterRepo(),
		quotationRepo: newFakeQuotationRepo(q1, q2),
		invoiceRepo:   newFakeInvoiceRepo(),
	}
	uc := appbilling.NewConvertQuoteUseCase(runner, testBillingCfg, newTestFeed())

	first, err := uc.Convert(context.Background(), q1.ID)
	require.NoError(t, err)
	second, err := uc.Convert(context.Background(), q2.ID)
	require.NoError(t, err)

	assert.Equal(t, "INV-1000", first.InvoiceNumber)
	assert.Equal(t, "INV-1001", second.InvoiceNumber)
}
