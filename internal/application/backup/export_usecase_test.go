package backup_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cloudonetech/console-api/internal/application/backup"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct{ customers []*entity.Customer }

func (r *fakeCustomerRepo) Create(*entity.Customer) error            { return nil }
func (r *fakeCustomerRepo) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	return pageOf(r.customers, limit, offset), nil
}
func (r *fakeCustomerRepo) Count() (int, error)       { return len(r.customers), nil }
func (r *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(string) error           { return nil }

type fakeServiceRepo struct{ services []*entity.ServiceItem }

func (r *fakeServiceRepo) Create(*entity.ServiceItem) error            { return nil }
func (r *fakeServiceRepo) GetByID(string) (*entity.ServiceItem, error) { return nil, nil }
func (r *fakeServiceRepo) List(limit, offset int) ([]*entity.ServiceItem, error) {
	return pageOf(r.services, limit, offset), nil
}
func (r *fakeServiceRepo) Update(*entity.ServiceItem) error { return nil }

type fakeQuotationRepo struct{ quotes []*entity.Quotation }

func (r *fakeQuotationRepo) Create(*entity.Quotation) error            { return nil }
func (r *fakeQuotationRepo) GetByID(string) (*entity.Quotation, error) { return nil, nil }
func (r *fakeQuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	return pageOf(r.quotes, limit, offset), nil
}
func (r *fakeQuotationRepo) Count() (int, error)               { return len(r.quotes), nil }
func (r *fakeQuotationRepo) UpdateStatus(string, string) error { return nil }

type fakeInvoiceRepo struct{ invoices []*entity.Invoice }

func (r *fakeInvoiceRepo) Create(*entity.Invoice) error            { return nil }
func (r *fakeInvoiceRepo) GetByID(string) (*entity.Invoice, error) { return nil, nil }
func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	return pageOf(r.invoices, limit, offset), nil
}
func (r *fakeInvoiceRepo) ListAll() ([]*entity.Invoice, error) { return r.invoices, nil }
func (r *fakeInvoiceRepo) Count() (int, error)                 { return len(r.invoices), nil }
func (r *fakeInvoiceRepo) UpdateStatus(string, string) error   { return nil }

func pageOf[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

func newExportUC() *backup.ExportUseCase {
	now := time.Now()
	return backup.NewExportUseCase(
		&fakeCustomerRepo{customers: []*entity.Customer{
			{ID: "c-1", Name: "ACME Trading LLC", Email: "acme@example.com", CreatedAt: now},
			{ID: "c-2", Name: "Globex FZE", TRN: "100123456700003", CreatedAt: now},
		}},
		&fakeServiceRepo{services: []*entity.ServiceItem{
			{ID: "s-1", Name: "Desarrollo web", Price: decimal.NewFromInt(1000), CreatedAt: now},
		}},
		&fakeQuotationRepo{quotes: []*entity.Quotation{
			{ID: "q-1", QuoteNumber: "QTN-1000", CustomerID: "c-1", Status: entity.StatusDraft, Currency: money.AED, CreatedAt: now},
		}},
		&fakeInvoiceRepo{invoices: []*entity.Invoice{
			{ID: "i-1", InvoiceNumber: "INV-1000", CustomerID: "c-1", Status: entity.StatusUnpaid, Currency: money.AED, DueDate: now, CreatedAt: now},
		}},
	)
}

func TestExportCSV_Clientes(t *testing.T) {
	uc := newExportUC()

	data, filename, err := uc.ExportCSV(context.Background(), backup.CollectionCustomers)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "customers_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 clientes")
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "ACME Trading LLC", records[1][1])
	assert.Equal(t, "100123456700003", records[2][6])
}

func TestExportCSV_Facturas(t *testing.T) {
	uc := newExportUC()

	data, _, err := uc.ExportCSV(context.Background(), backup.CollectionInvoices)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "INV-1000", records[1][1])
	assert.Equal(t, entity.StatusUnpaid, records[1][9])
}

func TestExportCSV_ColeccionDesconocida(t *testing.T) {
	uc := newExportUC()

	_, _, err := uc.ExportCSV(context.Background(), "widgets")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportJSON_ArchivoCompleto(t *testing.T) {
	uc := newExportUC()

	data, filename, err := uc.ExportJSON(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "backup_"))
	assert.True(t, strings.HasSuffix(filename, ".json"))

	var archive backup.Archive
	require.NoError(t, json.Unmarshal(data, &archive))
	assert.Len(t, archive.Customers, 2)
	assert.Len(t, archive.Services, 1)
	assert.Len(t, archive.Quotations, 1)
	assert.Len(t, archive.Invoices, 1)
	assert.Equal(t, "QTN-1000", archive.Quotations[0].QuoteNumber)
	assert.False(t, archive.ExportedAt.IsZero())
}
