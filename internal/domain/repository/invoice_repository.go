package repository

import "github.com/cloudonetech/console-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	// ListAll sin paginar; lo usan reportes agregados y el respaldo, que
	// recalculan siempre sobre la colección completa.
	ListAll() ([]*entity.Invoice, error)
	Count() (int, error)
	UpdateStatus(id, status string) error
}
