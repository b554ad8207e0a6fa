package money_test

import (
	"testing"

	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de negocio: tasa fija 1 AED = 22.50 INR.
// toDisplay(100, AED, INR) == 2250 y toDisplay(2250, INR, AED) == 100.
// ──────────────────────────────────────────────────────────────────────────────

func TestToDisplay_VectoresExactos(t *testing.T) {
	got := money.ToDisplay(decimal.NewFromInt(100), money.AED, money.INR)
	assert.True(t, got.Equal(decimal.NewFromInt(2250)),
		"100 AED deben ser 2250 INR, got %s", got)

	got = money.ToDisplay(decimal.NewFromInt(2250), money.INR, money.AED)
	assert.True(t, got.Equal(decimal.NewFromInt(100)),
		"2250 INR deben ser 100 AED, got %s", got)
}

func TestToDisplay_MismaMonedaEsIdentidad(t *testing.T) {
	amount := decimal.NewFromFloat(1234.56)
	assert.True(t, money.ToDisplay(amount, money.AED, money.AED).Equal(amount))
	assert.True(t, money.ToDisplay(amount, money.INR, money.INR).Equal(amount))
}

// TestToDisplay_IdaYVuelta verifica que AED→INR→AED devuelve el monto
// original dentro de tolerancia 1e-6, para varios montos positivos.
func TestToDisplay_IdaYVuelta(t *testing.T) {
	tolerance := decimal.New(1, -6) // 1e-6
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(0.01),
		decimal.NewFromInt(1),
		decimal.NewFromFloat(99.99),
		decimal.NewFromInt(2050),
		decimal.NewFromFloat(123456.78),
	}
	for _, amount := range amounts {
		inr := money.ToDisplay(amount, money.AED, money.INR)
		back := money.ToDisplay(inr, money.INR, money.AED)
		diff := back.Sub(amount).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"ida y vuelta de %s se desvía %s", amount, diff)
	}
}

func TestNormalizeToBase(t *testing.T) {
	// Un documento en INR se expresa en AED para reportes.
	got := money.NormalizeToBase(decimal.NewFromInt(2250), money.INR)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	// AED ya está en base: identidad.
	amount := decimal.NewFromFloat(2050)
	assert.True(t, money.NormalizeToBase(amount, money.AED).Equal(amount))
}

func TestParse(t *testing.T) {
	cur, err := money.Parse("")
	require.NoError(t, err)
	assert.Equal(t, money.AED, cur, "vacío se interpreta como la moneda base")

	cur, err = money.Parse("INR")
	require.NoError(t, err)
	assert.Equal(t, money.INR, cur)

	_, err = money.Parse("USD")
	assert.Error(t, err, "USD no está soportado")
}
