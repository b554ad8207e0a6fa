package billing

import (
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
)

// validStatuses es el conjunto cerrado de estados de documento.
var validStatuses = map[string]bool{
	entity.StatusDraft:     true,
	entity.StatusSent:      true,
	entity.StatusPaid:      true,
	entity.StatusUnpaid:    true,
	entity.StatusPartial:   true,
	entity.StatusCancelled: true,
}

// ParseStatus valida que el string sea un estado conocido.
func ParseStatus(s string) (string, error) {
	if !validStatuses[s] {
		return "", fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, s)
	}
	return s, nil
}

// CanTransition decide si el cambio de estado from → to está permitido.
//
// Reglas:
//   - CANCELLED es terminal: de ahí no se sale.
//   - DRAFT no se re-entra: un documento emitido nunca vuelve a borrador.
//   - Todo lo demás está permitido, incluido marcar PAID desde cualquier
//     estado vivo (la operación manual más frecuente del negocio).
func CanTransition(from, to string) bool {
	if !validStatuses[from] || !validStatuses[to] {
		return false
	}
	if from == entity.StatusCancelled {
		return false
	}
	if to == entity.StatusDraft {
		return false
	}
	// Re-aplicar el mismo estado es un no-op permitido (la UI lo hace).
	return true
}

// Transition valida y aplica el cambio; retorna ErrInvalidTransition si la
// tabla lo rechaza.
func Transition(from, to string) (string, error) {
	to, err := ParseStatus(to)
	if err != nil {
		return "", err
	}
	if !CanTransition(from, to) {
		return "", fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, from, to)
	}
	return to, nil
}
