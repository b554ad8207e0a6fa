package billing

import (
	"context"
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/cloudonetech/console-api/pkg/config"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tipos de documento para el PDF.
const (
	PDFKindQuotation = "QUOTATION"
	PDFKindInvoice   = "INVOICE"
)

// PDFUseCase genera la exportación PDF de un documento: página 1 con la tabla
// de líneas y totales, página 2 con los datos de transferencia bancaria y el
// QR de pago.
type PDFUseCase struct {
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
	customerRepo  repository.CustomerRepository
	generator     DocumentPDFGenerator
	org           config.OrgConfig
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator DocumentPDFGenerator,
	org config.OrgConfig,
) *PDFUseCase {
	return &PDFUseCase{
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
		generator:     generator,
		org:           org,
	}
}

// amountPrinter formatea montos con separador de miles (es un documento para
// el cliente, no un dump de máquina).
var amountPrinter = message.NewPrinter(language.English)

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return amountPrinter.Sprintf("%.2f", f)
}

// DownloadQuotationPDF genera el PDF de una cotización.
func (uc *PDFUseCase) DownloadQuotationPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	doc := &DocumentForPDF{
		Kind:     PDFKindQuotation,
		Number:   q.QuoteNumber,
		Date:     q.CreatedAt.Format("02/01/2006"),
		DueLabel: "Valid until: " + q.ValidUntil.Format("02/01/2006"),
		Currency: currencyOrBase(q.Currency),
		Items:    q.Items,
		Subtotal: formatAmount(q.Subtotal),
		VATRate:  q.VATRate.String(),
		VAT:      formatAmount(q.VAT),
		Discount: formatAmount(q.Discount),
		Total:    formatAmount(q.Total),
	}
	return uc.render(ctx, doc, q.CustomerID, q.QuoteNumber)
}

// DownloadInvoicePDF genera el PDF de una factura.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	doc := &DocumentForPDF{
		Kind:     PDFKindInvoice,
		Number:   inv.InvoiceNumber,
		Date:     inv.CreatedAt.Format("02/01/2006"),
		DueLabel: "Due date: " + inv.DueDate.Format("02/01/2006"),
		Currency: currencyOrBase(inv.Currency),
		Items:    inv.Items,
		Subtotal: formatAmount(inv.Subtotal),
		VATRate:  inv.VATRate.String(),
		VAT:      formatAmount(inv.VAT),
		Discount: formatAmount(inv.Discount),
		Total:    formatAmount(inv.Total),
	}
	return uc.render(ctx, doc, inv.CustomerID, inv.InvoiceNumber)
}

func (uc *PDFUseCase) render(ctx context.Context, doc *DocumentForPDF, customerID, number string) ([]byte, string, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		// El cliente pudo haber sido borrado (borrado duro sin cascada); el
		// documento sigue siendo exportable con un receptor genérico.
		customer = &entity.Customer{Name: "Cliente eliminado"}
	}
	pdfBytes, err := uc.generator.GenerateDocumentPDF(ctx, doc, customer, uc.org)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s.pdf", number), nil
}

func currencyOrBase(c string) string {
	if c == "" {
		return money.AED
	}
	return c
}
