package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository (usable con pool o tx).
// Las líneas se guardan como JSONB en la misma fila: son un snapshot inmutable
// del documento, no filas que se consulten por separado.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create persiste una cotización completa.
func (r *QuotationRepo) Create(quote *entity.Quotation) error {
	items, err := json.Marshal(quote.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO quotations (id, quote_number, customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, valid_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		quote.ID, quote.QuoteNumber, quote.CustomerID, items,
		quote.Subtotal, quote.VATRate, quote.VAT, quote.Discount, quote.Total,
		quote.Status, quote.Currency, quote.ValidUntil,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización completa por ID.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `
		SELECT id, quote_number, customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, valid_until, created_at, updated_at
		FROM quotations WHERE id = $1`
	var q entity.Quotation
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.QuoteNumber, &q.CustomerID, &items,
		&q.Subtotal, &q.VATRate, &q.VAT, &q.Discount, &q.Total,
		&q.Status, &q.Currency, &q.ValidUntil,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if err := json.Unmarshal(items, &q.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &q, nil
}

// List lista cotizaciones con paginación, más recientes primero.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT id, quote_number, customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, valid_until, created_at, updated_at
		FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		var items []byte
		if err := rows.Scan(
			&q.ID, &q.QuoteNumber, &q.CustomerID, &items,
			&q.Subtotal, &q.VATRate, &q.VAT, &q.Discount, &q.Total,
			&q.Status, &q.Currency, &q.ValidUntil,
			&q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		if err := json.Unmarshal(items, &q.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Count devuelve el total de cotizaciones.
func (r *QuotationRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM quotations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quotations: %w", err)
	}
	return n, nil
}

// UpdateStatus cambia solo el estado del documento.
func (r *QuotationRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
