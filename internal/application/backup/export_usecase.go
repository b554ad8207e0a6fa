// Package backup implementa la exportación de datos: CSV por colección y un
// archivo JSON completo con todas las colecciones. El respaldo es solo para
// ADMIN y es de solo lectura: nunca muta estado.
package backup

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Colecciones exportables.
const (
	CollectionCustomers  = "customers"
	CollectionServices   = "services"
	CollectionQuotations = "quotations"
	CollectionInvoices   = "invoices"
)

// exportPageSize tamaño de página al recorrer una colección completa.
const exportPageSize = 500

// ExportUseCase exporta colecciones completas para respaldo.
type ExportUseCase struct {
	customerRepo  repository.CustomerRepository
	serviceRepo   repository.ServiceRepository
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	customerRepo repository.CustomerRepository,
	serviceRepo repository.ServiceRepository,
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
) *ExportUseCase {
	return &ExportUseCase{
		customerRepo:  customerRepo,
		serviceRepo:   serviceRepo,
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorridos completos (paginan hasta agotar la colección)
// ──────────────────────────────────────────────────────────────────────────────

func listAllCustomers(repo repository.CustomerRepository) ([]*entity.Customer, error) {
	var all []*entity.Customer
	for offset := 0; ; offset += exportPageSize {
		page, err := repo.List(exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}

func listAllServices(repo repository.ServiceRepository) ([]*entity.ServiceItem, error) {
	var all []*entity.ServiceItem
	for offset := 0; ; offset += exportPageSize {
		page, err := repo.List(exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}

func listAllQuotations(repo repository.QuotationRepository) ([]*entity.Quotation, error) {
	var all []*entity.Quotation
	for offset := 0; ; offset += exportPageSize {
		page, err := repo.List(exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV por colección
// ──────────────────────────────────────────────────────────────────────────────

// ExportCSV genera el CSV de una colección. Devuelve el contenido y el nombre
// de archivo sugerido.
func (uc *ExportUseCase) ExportCSV(ctx context.Context, collection string) ([]byte, string, error) {
	var (
		rows [][]string
		err  error
	)
	switch collection {
	case CollectionCustomers:
		rows, err = uc.customerRows()
	case CollectionServices:
		rows, err = uc.serviceRows()
	case CollectionQuotations:
		rows, err = uc.quotationRows()
	case CollectionInvoices:
		rows, err = uc.invoiceRows()
	default:
		return nil, "", domain.ErrInvalidInput
	}
	if err != nil {
		return nil, "", fmt.Errorf("backup: exportar %s: %w", collection, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, "", fmt.Errorf("backup: escribir csv: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.csv", collection, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (uc *ExportUseCase) customerRows() ([][]string, error) {
	customers, err := listAllCustomers(uc.customerRepo)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "name", "company_name", "phone", "email", "address", "trn", "notes", "created_at"}}
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID, c.Name, c.CompanyName, c.Phone, c.Email, c.Address, c.TRN, c.Notes,
			c.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (uc *ExportUseCase) serviceRows() ([][]string, error) {
	services, err := listAllServices(uc.serviceRepo)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "name", "price", "category", "description", "created_at"}}
	for _, s := range services {
		rows = append(rows, []string{
			s.ID, s.Name, s.Price.String(), s.Category, s.Description,
			s.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (uc *ExportUseCase) quotationRows() ([][]string, error) {
	quotes, err := listAllQuotations(uc.quotationRepo)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "quote_number", "customer_id", "subtotal", "vat_rate", "vat", "discount", "total", "status", "currency", "valid_until", "created_at"}}
	for _, q := range quotes {
		rows = append(rows, []string{
			q.ID, q.QuoteNumber, q.CustomerID,
			q.Subtotal.String(), q.VATRate.String(), q.VAT.String(), q.Discount.String(), q.Total.String(),
			q.Status, q.Currency,
			q.ValidUntil.Format(time.RFC3339), q.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (uc *ExportUseCase) invoiceRows() ([][]string, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "invoice_number", "quotation_id", "customer_id", "subtotal", "vat_rate", "vat", "discount", "total", "status", "currency", "due_date", "created_at"}}
	for _, inv := range invoices {
		rows = append(rows, []string{
			inv.ID, inv.InvoiceNumber, inv.QuotationID, inv.CustomerID,
			inv.Subtotal.String(), inv.VATRate.String(), inv.VAT.String(), inv.Discount.String(), inv.Total.String(),
			inv.Status, inv.Currency,
			inv.DueDate.Format(time.RFC3339), inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Archivo JSON completo
// ──────────────────────────────────────────────────────────────────────────────

// Archive snapshot completo de todas las colecciones de negocio.
type Archive struct {
	ExportedAt time.Time         `json:"exported_at"`
	Customers  []CustomerRecord  `json:"customers"`
	Services   []ServiceRecord   `json:"services"`
	Quotations []QuotationRecord `json:"quotations"`
	Invoices   []InvoiceRecord   `json:"invoices"`
}

// CustomerRecord forma serializada de un cliente dentro del archivo.
type CustomerRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	TRN         string    `json:"trn,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceRecord forma serializada de un servicio del catálogo.
type ServiceRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	IconName    string          `json:"icon_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// QuotationRecord forma serializada de una cotización.
type QuotationRecord struct {
	ID          string            `json:"id"`
	QuoteNumber string            `json:"quote_number"`
	CustomerID  string            `json:"customer_id"`
	Items       []entity.LineItem `json:"items"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	VATRate     decimal.Decimal   `json:"vat_rate"`
	VAT         decimal.Decimal   `json:"vat"`
	Discount    decimal.Decimal   `json:"discount"`
	Total       decimal.Decimal   `json:"total"`
	Status      string            `json:"status"`
	Currency    string            `json:"currency"`
	ValidUntil  time.Time         `json:"valid_until"`
	CreatedAt   time.Time         `json:"created_at"`
}

// InvoiceRecord forma serializada de una factura.
type InvoiceRecord struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	QuotationID   string            `json:"quotation_id,omitempty"`
	CustomerID    string            `json:"customer_id"`
	Items         []entity.LineItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	VATRate       decimal.Decimal   `json:"vat_rate"`
	VAT           decimal.Decimal   `json:"vat"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status"`
	Currency      string            `json:"currency"`
	DueDate       time.Time         `json:"due_date"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ExportJSON arma el archivo completo consultando las cuatro colecciones en
// paralelo y lo serializa con indentación (es para que un humano lo guarde y
// eventualmente lo inspeccione, no un formato de intercambio).
func (uc *ExportUseCase) ExportJSON(ctx context.Context) ([]byte, string, error) {
	archive := Archive{ExportedAt: time.Now()}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		customers, err := listAllCustomers(uc.customerRepo)
		if err != nil {
			return err
		}
		archive.Customers = toCustomerRecords(customers)
		return nil
	})
	g.Go(func() error {
		services, err := listAllServices(uc.serviceRepo)
		if err != nil {
			return err
		}
		archive.Services = toServiceRecords(services)
		return nil
	})
	g.Go(func() error {
		quotes, err := listAllQuotations(uc.quotationRepo)
		if err != nil {
			return err
		}
		archive.Quotations = toQuotationRecords(quotes)
		return nil
	})
	g.Go(func() error {
		invoices, err := uc.invoiceRepo.ListAll()
		if err != nil {
			return err
		}
		archive.Invoices = toInvoiceRecords(invoices)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, "", fmt.Errorf("backup: exportar json: %w", err)
	}

	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("backup: serializar json: %w", err)
	}
	filename := fmt.Sprintf("backup_%s.json", time.Now().Format("2006-01-02"))
	return data, filename, nil
}

func toCustomerRecords(customers []*entity.Customer) []CustomerRecord {
	out := make([]CustomerRecord, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerRecord{
			ID:          c.ID,
			Name:        c.Name,
			CompanyName: c.CompanyName,
			Phone:       c.Phone,
			Email:       c.Email,
			Address:     c.Address,
			TRN:         c.TRN,
			Notes:       c.Notes,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return out
}

func toServiceRecords(services []*entity.ServiceItem) []ServiceRecord {
	out := make([]ServiceRecord, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceRecord{
			ID:          s.ID,
			Name:        s.Name,
			Price:       s.Price,
			Category:    s.Category,
			Description: s.Description,
			IconName:    s.IconName,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return out
}

func toQuotationRecords(quotes []*entity.Quotation) []QuotationRecord {
	out := make([]QuotationRecord, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuotationRecord{
			ID:          q.ID,
			QuoteNumber: q.QuoteNumber,
			CustomerID:  q.CustomerID,
			Items:       q.Items,
			Subtotal:    q.Subtotal,
			VATRate:     q.VATRate,
			VAT:         q.VAT,
			Discount:    q.Discount,
			Total:       q.Total,
			Status:      q.Status,
			Currency:    q.Currency,
			ValidUntil:  q.ValidUntil,
			CreatedAt:   q.CreatedAt,
		})
	}
	return out
}

func toInvoiceRecords(invoices []*entity.Invoice) []InvoiceRecord {
	out := make([]InvoiceRecord, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, InvoiceRecord{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			QuotationID:   inv.QuotationID,
			CustomerID:    inv.CustomerID,
			Items:         inv.Items,
			Subtotal:      inv.Subtotal,
			VATRate:       inv.VATRate,
			VAT:           inv.VAT,
			Discount:      inv.Discount,
			Total:         inv.Total,
			Status:        inv.Status,
			Currency:      inv.Currency,
			DueDate:       inv.DueDate,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return out
}
