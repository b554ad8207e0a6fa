package billing_test

import (
	"testing"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/billing"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestTransition_CanceladoEsTerminal(t *testing.T) {
	for _, to := range []string{entity.StatusDraft, entity.StatusSent, entity.StatusPaid, entity.StatusUnpaid, entity.StatusPartial} {
		_, err := billing.Transition(entity.StatusCancelled, to)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "CANCELLED → %s debe rechazarse", to)
	}
}

func TestTransition_DraftNoSeReentra(t *testing.T) {
	for _, from := range []string{entity.StatusSent, entity.StatusPaid, entity.StatusUnpaid, entity.StatusPartial} {
		_, err := billing.Transition(from, entity.StatusDraft)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s → DRAFT debe rechazarse", from)
	}
}

// La UI original marca PAID manualmente desde cualquier estado previo; la
// tabla no debe rechazar nada que la operación del negocio ejercita.
func TestTransition_PaidDesdeCualquierEstadoVivo(t *testing.T) {
	for _, from := range []string{entity.StatusDraft, entity.StatusSent, entity.StatusUnpaid, entity.StatusPartial} {
		got, err := billing.Transition(from, entity.StatusPaid)
		assert.NoError(t, err, "%s → PAID debe permitirse", from)
		assert.Equal(t, entity.StatusPaid, got)
	}
}

func TestTransition_FlujoNormal(t *testing.T) {
	steps := [][2]string{
		{entity.StatusDraft, entity.StatusSent},
		{entity.StatusSent, entity.StatusUnpaid},
		{entity.StatusUnpaid, entity.StatusPartial},
		{entity.StatusPartial, entity.StatusPaid},
		{entity.StatusPaid, entity.StatusCancelled},
	}
	for _, s := range steps {
		_, err := billing.Transition(s[0], s[1])
		assert.NoError(t, err, "%s → %s", s[0], s[1])
	}
}

func TestTransition_EstadoDesconocido(t *testing.T) {
	_, err := billing.Transition(entity.StatusDraft, "APPROVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseStatus(t *testing.T) {
	got, err := billing.ParseStatus("PAID")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got)

	_, err = billing.ParseStatus("paid")
	assert.Error(t, err, "los estados son sensibles a mayúsculas")
}
