// Package billing contiene los casos de uso del ciclo de documentos:
// cotizaciones, facturas, conversión y exportación PDF.
package billing

import (
	"context"

	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/cloudonetech/console-api/pkg/config"
)

// BillingTxRunner ejecuta una función con repositorios atados a una misma
// transacción. Es la garantía de atomicidad de las dos operaciones críticas:
//
//   - creación de documento: asignar consecutivo + insertar el documento son
//     un solo commit, así que un insert fallido no consume número;
//   - conversión cotización→factura: insertar la factura y marcar la
//     cotización como SENT es una sola operación desde la perspectiva del
//     caller — nunca queda factura sin cotización actualizada ni viceversa.
type BillingTxRunner interface {
	Run(ctx context.Context, fn func(
		counterRepo repository.CounterRepository,
		quotationRepo repository.QuotationRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// DocumentForPDF datos que necesita el generador para renderizar cualquiera
// de los dos tipos de documento.
type DocumentForPDF struct {
	Kind     string // "QUOTATION" | "INVOICE"
	Number   string
	Date     string // dd/mm/yyyy
	DueLabel string // "Valid until: ..." o "Due date: ..."
	Currency string
	Items    []entity.LineItem
	Subtotal string
	VATRate  string
	VAT      string
	Discount string
	Total    string
}

// DocumentPDFGenerator puerto del renderizador PDF (dos páginas: detalle y
// datos de pago).
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *DocumentForPDF, customer *entity.Customer, org config.OrgConfig) ([]byte, error)
}
