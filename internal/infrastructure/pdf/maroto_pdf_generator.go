// Package pdf implementa la exportación PDF de cotizaciones y facturas.
//
// Layout (A4, dos páginas):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  PÁGINA 1                                                   │
//	│  HEADER: Organización  │  QUOTATION/INVOICE + N° + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Cliente + contacto + TRN                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                 │
//	│  TOTALES: Subtotal / VAT / Descuento / TOTAL                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PÁGINA 2                                                   │
//	│  BANK TRANSFER: banco, cuenta, IBAN, SWIFT                  │
//	│  QR de pago + leyenda                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	appconfig "github.com/cloudonetech/console-api/pkg/config"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *appbilling.DocumentForPDF,
	customer *entity.Customer,
	org appconfig.OrgConfig,
) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s %s", doc.Kind, doc.Number), true).
		WithAuthor(org.Name, true).
		Build()

	m := maroto.New(cfg)

	// Página 1: documento
	m.AddRows(headerRow(doc, org))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(doc.DueLabel, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	)))

	// Página 2: datos de pago
	m.AddPages(page.New().Add(paymentRows(org)...))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: organización (izq) y tipo + número + fecha (der).
func headerRow(doc *appbilling.DocumentForPDF, org appconfig.OrgConfig) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(org.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(org.Address, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(fmt.Sprintf("%s   |   %s", org.Email, org.Website), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(doc.Kind, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+doc.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Currency: "+doc.Currency, props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// billToRow: datos del cliente.
func billToRow(customer *entity.Customer) core.Row {
	contact := fmt.Sprintf("Email: %s   |   Tel: %s",
		nonEmpty(customer.Email, "—"),
		nonEmpty(customer.Phone, "—"),
	)
	if customer.TRN != "" {
		contact += "   |   TRN: " + customer.TRN
	}
	name := customer.Name
	if customer.CompanyName != "" {
		name += " — " + customer.CompanyName
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción del servicio", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Name
		if it.Description != "" {
			desc += " — " + it.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				it.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc *appbilling.DocumentForPDF) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(4), // espacio izquierdo
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("VAT (%s%%):", doc.VATRate)),
			label("Descuento:"),
			grandLabel("TOTAL "+doc.Currency+":"),
		),
		col.New(4).Add(
			value(doc.Subtotal),
			value(doc.VAT),
			value("-"+doc.Discount),
			grandValue(doc.Total),
		),
	)
}

// paymentRows: página de pago con datos bancarios y QR.
func paymentRows(org appconfig.OrgConfig) []core.Row {
	bank := org.Bank
	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1, Color: colorGray})),
		)
	}

	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("PAYMENT DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		)),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
		row.New(8).Add(col.New(12).Add(
			text.New("Bank Transfer", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		)),
		field("Bank:", bank.BankName),
		field("Account Name:", bank.AccountName),
		field("Account Number:", bank.AccountNumber),
		field("IBAN:", bank.IBAN),
		field("SWIFT Code:", bank.SwiftCode),
		field("Branch:", bank.Branch),
		line.NewRow(3),
	}

	if org.QRPayload != "" {
		rows = append(rows, row.New(50).Add(
			col.New(4).Add(code.NewQr(org.QRPayload, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para pagar\ncon Google Pay.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Gracias por su preferencia.", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 24,
					Left: 3, Color: colorPrimary,
				}),
			),
		))
	}

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
