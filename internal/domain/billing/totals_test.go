package billing_test

import (
	"testing"

	"github.com/cloudonetech/console-api/internal/domain/billing"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia: una línea (unitPrice=1000, qty=2), vatRate=5, discount=50
// → subtotal=2000, vat=100, total=2050.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_VectorExacto(t *testing.T) {
	items := []entity.LineItem{
		{ServiceID: "svc-1", Name: "Web Design", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1000)},
	}
	require.NoError(t, billing.RecomputeLines(items))

	totals := billing.ComputeTotals(items, decimal.NewFromInt(5), decimal.NewFromInt(50))

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(2000)), "subtotal, got %s", totals.Subtotal)
	assert.True(t, totals.VAT.Equal(decimal.NewFromInt(100)), "vat, got %s", totals.VAT)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(2050)), "total, got %s", totals.Total)
}

// TestRecomputeLines_InvarianteDeLinea: total = cantidad × precio unitario
// después de cada mutación, incluso si el caller mandó otro valor.
func TestRecomputeLines_InvarianteDeLinea(t *testing.T) {
	items := []entity.LineItem{
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(99.90), Total: decimal.NewFromInt(1)}, // total basura
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(500)},
	}
	require.NoError(t, billing.RecomputeLines(items))

	assert.True(t, items[0].Total.Equal(decimal.NewFromFloat(299.70)))
	assert.True(t, items[1].Total.Equal(decimal.NewFromInt(500)))

	totals := billing.ComputeTotals(items, billing.DefaultVATRate, decimal.Zero)
	sum := items[0].Total.Add(items[1].Total)
	assert.True(t, totals.Subtotal.Equal(sum), "subtotal debe ser la suma de los totales de línea")
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.VAT)), "sin descuento: total = subtotal + vat")
}

func TestRecomputeLines_RechazaCantidadNoPositiva(t *testing.T) {
	items := []entity.LineItem{{Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(100)}}
	assert.Error(t, billing.RecomputeLines(items))

	items = []entity.LineItem{{Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(100)}}
	assert.Error(t, billing.RecomputeLines(items))
}

func TestRecomputeLines_RechazaPrecioNegativo(t *testing.T) {
	items := []entity.LineItem{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-10)}}
	assert.Error(t, billing.RecomputeLines(items))
}

// Un descuento mayor que subtotal+vat produce total negativo; el caso de uso
// lo rechaza, pero el cálculo en sí es aritmética pura y debe ser exacto.
func TestComputeTotals_DescuentoMayorQueTotal(t *testing.T) {
	items := []entity.LineItem{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)}}
	require.NoError(t, billing.RecomputeLines(items))

	totals := billing.ComputeTotals(items, decimal.Zero, decimal.NewFromInt(200))
	assert.True(t, totals.Total.IsNegative())
}
