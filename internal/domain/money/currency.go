// Package money implementa la normalización de moneda del sistema.
//
// Hay exactamente dos monedas soportadas: AED (base, en la que se expresan
// los precios del catálogo y los reportes agregados) e INR (solo display).
// La tasa es una constante global fija, no se consulta en línea: los montos
// de un documento nunca dependen de una tasa histórica.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monedas soportadas.
const (
	AED = "AED" // moneda base
	INR = "INR"
)

// Tasa fija: 1 AED = 22.50 INR.
var rateAEDToINR = decimal.NewFromFloat(22.50)

// Rate expone la tasa fija AED→INR (para respuestas y documentación).
func Rate() decimal.Decimal { return rateAEDToINR }

// IsValid indica si el código de moneda es uno de los dos soportados.
func IsValid(currency string) bool {
	return currency == AED || currency == INR
}

// Parse valida un código de moneda; vacío se interpreta como AED (base).
func Parse(currency string) (string, error) {
	if currency == "" {
		return AED, nil
	}
	if !IsValid(currency) {
		return "", fmt.Errorf("moneda no soportada: %q", currency)
	}
	return currency, nil
}

// ToDisplay convierte un monto de la moneda del documento a la moneda de
// display. Función pura de (monto, origen, destino) y la tasa global; la
// ida y vuelta AED→INR→AED devuelve el monto original.
func ToDisplay(amount decimal.Decimal, docCurrency, displayCurrency string) decimal.Decimal {
	if docCurrency == displayCurrency {
		return amount
	}
	if docCurrency == AED && displayCurrency == INR {
		return amount.Mul(rateAEDToINR)
	}
	if docCurrency == INR && displayCurrency == AED {
		return amount.Div(rateAEDToINR)
	}
	return amount
}

// NormalizeToBase expresa un monto en AED sin importar la moneda de display
// seleccionada. Es la única conversión usada para reportes agregados
// (ingresos sumados sobre documentos emitidos en monedas distintas).
func NormalizeToBase(amount decimal.Decimal, docCurrency string) decimal.Decimal {
	if docCurrency == INR {
		return amount.Div(rateAEDToINR)
	}
	return amount
}
