package repository

import "github.com/cloudonetech/console-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para el catálogo de servicios.
// No hay Delete: el catálogo nunca se borra, solo se muta en sitio.
type ServiceRepository interface {
	Create(service *entity.ServiceItem) error
	GetByID(id string) (*entity.ServiceItem, error)
	List(limit, offset int) ([]*entity.ServiceItem, error)
	Update(service *entity.ServiceItem) error
}
