// Package numbering emite los consecutivos legibles de documentos
// ("QTN-1001", "INV-1042").
package numbering

import (
	"context"
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
)

// SequenceAllocator asigna números únicos y estrictamente crecientes por tipo
// de documento. La atomicidad vive en el puerto CounterRepository: NextValue
// es un upsert serializado por la fila del contador, así que dos llamadas
// concurrentes nunca reciben el mismo entero, y si la escritura falla no se
// consume número.
type SequenceAllocator struct {
	counterRepo repository.CounterRepository
	floor       int64
}

// NewSequenceAllocator construye el asignador. floor es el primer valor
// emitido cuando el contador aún no existe (1000 en producción).
func NewSequenceAllocator(counterRepo repository.CounterRepository, floor int64) *SequenceAllocator {
	return &SequenceAllocator{counterRepo: counterRepo, floor: floor}
}

// Allocate devuelve el siguiente número formateado, ej: "QTN-1001".
func (a *SequenceAllocator) Allocate(ctx context.Context, docType string) (string, error) {
	if docType != entity.DocTypeQuotation && docType != entity.DocTypeInvoice {
		return "", fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, docType)
	}
	n, err := a.counterRepo.NextValue(ctx, docType, a.floor)
	if err != nil {
		return "", fmt.Errorf("asignar consecutivo %s: %w", docType, err)
	}
	return fmt.Sprintf("%s-%d", docType, n), nil
}
