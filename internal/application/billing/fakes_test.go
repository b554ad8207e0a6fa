package billing_test

import (
	"context"
	"sync"

	appbilling "github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/cloudonetech/console-api/pkg/config"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de billing. Implementan los mismos
// puertos que los adaptadores PostgreSQL con semántica equivalente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCounterRepo struct {
	mu      sync.Mutex
	current map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{current: make(map[string]int64)}
}

func (r *fakeCounterRepo) NextValue(_ context.Context, docType string, floor int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.current[docType]; !ok {
		r.current[docType] = floor
	} else {
		r.current[docType]++
	}
	return r.current[docType], nil
}

func (r *fakeCounterRepo) Current(_ context.Context, docType string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current[docType], nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
	for _, c := range customers {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.byID[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.byID[id], nil
}
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCustomerRepo) Count() (int, error)             { return len(r.byID), nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.byID[c.ID] = c; return nil }
func (r *fakeCustomerRepo) Delete(id string) error          { delete(r.byID, id); return nil }

type fakeServiceRepo struct {
	byID map[string]*entity.ServiceItem
}

func newFakeServiceRepo(services ...*entity.ServiceItem) *fakeServiceRepo {
	r := &fakeServiceRepo{byID: make(map[string]*entity.ServiceItem)}
	for _, s := range services {
		r.byID[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) Create(s *entity.ServiceItem) error { r.byID[s.ID] = s; return nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.ServiceItem, error) {
	return r.byID[id], nil
}
func (r *fakeServiceRepo) List(limit, offset int) ([]*entity.ServiceItem, error) {
	out := make([]*entity.ServiceItem, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeServiceRepo) Update(s *entity.ServiceItem) error { r.byID[s.ID] = s; return nil }

type fakeQuotationRepo struct {
	byID map[string]*entity.Quotation
}

func newFakeQuotationRepo(quotes ...*entity.Quotation) *fakeQuotationRepo {
	r := &fakeQuotationRepo{byID: make(map[string]*entity.Quotation)}
	for _, q := range quotes {
		r.byID[q.ID] = q
	}
	return r
}

func (r *fakeQuotationRepo) Create(q *entity.Quotation) error { r.byID[q.ID] = q; return nil }
func (r *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	return r.byID[id], nil
}
func (r *fakeQuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	out := make([]*entity.Quotation, 0, len(r.byID))
	for _, q := range r.byID {
		out = append(out, q)
	}
	return out, nil
}
func (r *fakeQuotationRepo) Count() (int, error) { return len(r.byID), nil }
func (r *fakeQuotationRepo) UpdateStatus(id, status string) error {
	if q, ok := r.byID[id]; ok {
		q.Status = status
	}
	return nil
}

type fakeInvoiceRepo struct {
	byID map[string]*entity.Invoice
}

func newFakeInvoiceRepo(invoices ...*entity.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{byID: make(map[string]*entity.Invoice)}
	for _, inv := range invoices {
		r.byID[inv.ID] = inv
	}
	return r
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error { r.byID[inv.ID] = inv; return nil }
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.byID[id], nil
}
func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	return r.ListAll()
}
func (r *fakeInvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		out = append(out, inv)
	}
	return out, nil
}
func (r *fakeInvoiceRepo) Count() (int, error) { return len(r.byID), nil }
func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	if inv, ok := r.byID[id]; ok {
		inv.Status = status
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente con los repos en memoria
// (sin transacción real; la semántica transaccional se prueba aparte en el
// adaptador PostgreSQL).
type fakeTxRunner struct {
	counterRepo   *fakeCounterRepo
	quotationRepo *fakeQuotationRepo
	invoiceRepo   *fakeInvoiceRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	counterRepo repository.CounterRepository,
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(r.counterRepo, r.quotationRepo, r.invoiceRepo)
}

var _ appbilling.BillingTxRunner = (*fakeTxRunner)(nil)

// testBillingCfg parámetros de producción: piso 1000, vencimiento 15 días.
var testBillingCfg = config.BillingConfig{
	CounterFloor:   1000,
	InvoiceDueDays: 15,
	QuoteValidDays: 30,
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// decPtr para los campos opcionales de los requests (nil = usar el default).
func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func newTestFeed() *events.Feed { return events.NewFeed() }
