package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo implementación de CounterRepository (usable con pool o tx).
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// NextValue incrementa y devuelve el consecutivo del tipo de documento en una
// sola sentencia. El upsert serializa las asignaciones concurrentes: dos
// transacciones que compiten por el mismo doc_type obtienen valores distintos
// y contiguos, sin leer-modificar-escribir en el cliente. La primera
// asignación de un tipo devuelve el piso.
func (r *CounterRepo) NextValue(ctx context.Context, docType string, floor int64) (int64, error) {
	const query = `
		INSERT INTO counters (doc_type, current_val)
		VALUES ($1, $2)
		ON CONFLICT (doc_type)
		DO UPDATE SET current_val = counters.current_val + 1
		RETURNING current_val`
	var val int64
	if err := r.q.QueryRow(ctx, query, docType, floor).Scan(&val); err != nil {
		return 0, fmt.Errorf("next counter value: %w", err)
	}
	return val, nil
}

// Current devuelve el último valor emitido sin consumir uno nuevo.
// 0 si el tipo nunca ha emitido.
func (r *CounterRepo) Current(ctx context.Context, docType string) (int64, error) {
	var val int64
	err := r.q.QueryRow(ctx, `SELECT current_val FROM counters WHERE doc_type = $1`, docType).Scan(&val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get counter: %w", err)
	}
	return val, nil
}
