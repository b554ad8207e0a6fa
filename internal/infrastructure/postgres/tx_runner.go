package postgres

import (
	"context"
	"fmt"

	"github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Lo usan
// las operaciones que asignan consecutivo + insertan documento (y la
// conversión cotización → factura): o se aplica todo, o no queda nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	counterRepo repository.CounterRepository,
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	counterRepo := NewCounterRepository(tx)
	quotationRepo := NewQuotationRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(counterRepo, quotationRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
