// Package billing contiene las reglas puras del ciclo de vida de documentos:
// cálculo de totales derivados y la tabla de transiciones de estado.
package billing

import (
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultVATRate es el IVA estándar (5%) aplicado si el documento no
// especifica otro.
var DefaultVATRate = decimal.NewFromInt(5)

// Totals agrupa los campos derivados de un documento.
type Totals struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// RecomputeLines fuerza el invariante por línea: Total = Quantity × UnitPrice.
// Retorna error si alguna línea tiene cantidad no positiva o precio negativo.
func RecomputeLines(items []entity.LineItem) error {
	for i := range items {
		it := &items[i]
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return fmt.Errorf("línea %d: cantidad debe ser positiva", i+1)
		}
		if it.UnitPrice.LessThan(decimal.Zero) {
			return fmt.Errorf("línea %d: precio unitario negativo", i+1)
		}
		it.Total = it.Quantity.Mul(it.UnitPrice)
	}
	return nil
}

// ComputeTotals deriva subtotal, IVA y total:
//
//	subtotal = Σ(línea.Total)
//	vat      = subtotal × vatRate/100
//	total    = subtotal + vat − discount
//
// Los campos derivados nunca se aceptan del cliente; siempre se recalculan
// aquí en el momento de la última mutación de las líneas.
func ComputeTotals(items []entity.LineItem, vatRate, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	vat := subtotal.Mul(vatRate).Div(decimal.NewFromInt(100))
	total := subtotal.Add(vat).Sub(discount)
	return Totals{Subtotal: subtotal, VAT: vat, Total: total}
}
