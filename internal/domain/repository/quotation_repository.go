package repository

import "github.com/cloudonetech/console-api/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	List(limit, offset int) ([]*entity.Quotation, error)
	Count() (int, error)
	UpdateStatus(id, status string) error
}
