package repository

import "github.com/cloudonetech/console-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (CRM).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Count() (int, error)
	Update(customer *entity.Customer) error
	// Delete es borrado duro; los documentos que referencian al cliente no se
	// tocan (guardan su propio snapshot de líneas).
	Delete(id string) error
}
