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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Misma representación que las cotizaciones: líneas como JSONB en la fila.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura completa.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, invoice_number, quotation_id, customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, nullIfEmpty(invoice.QuotationID), invoice.CustomerID, items,
		invoice.Subtotal, invoice.VATRate, invoice.VAT, invoice.Discount, invoice.Total,
		invoice.Status, invoice.Currency, invoice.DueDate,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura completa por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, COALESCE(quotation_id, ''), customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, due_date, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.QuotationID, &inv.CustomerID, &items,
		&inv.Subtotal, &inv.VATRate, &inv.VAT, &inv.Discount, &inv.Total,
		&inv.Status, &inv.Currency, &inv.DueDate,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &inv, nil
}

// List lista facturas con paginación, más recientes primero.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, COALESCE(quotation_id, ''), customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, due_date, created_at, updated_at
		FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// ListAll devuelve todas las facturas (métricas del dashboard y respaldo;
// volumen acotado por ser una sola organización).
func (r *InvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, COALESCE(quotation_id, ''), customer_id, items, subtotal, vat_rate, vat, discount, total, status, currency, due_date, created_at, updated_at
		FROM invoices ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var items []byte
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.QuotationID, &inv.CustomerID, &items,
			&inv.Subtotal, &inv.VATRate, &inv.VAT, &inv.Discount, &inv.Total,
			&inv.Status, &inv.Currency, &inv.DueDate,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Count devuelve el total de facturas.
func (r *InvoiceRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// UpdateStatus cambia solo el estado del documento.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
