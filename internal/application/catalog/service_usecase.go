// Package catalog contiene los casos de uso del catálogo de servicios.
package catalog

import (
	"time"

	"github.com/cloudonetech/console-api/internal/application/dto"
	"github.com/cloudonetech/console-api/internal/application/events"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceUseCase casos de uso del catálogo. Los servicios nunca se borran;
// los documentos emitidos guardan snapshots, así que cambiar un precio aquí
// no altera documentos históricos.
type ServiceUseCase struct {
	repo repository.ServiceRepository
	feed *events.Feed
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, feed *events.Feed) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, feed: feed}
}

// Create da de alta un servicio en el catálogo. Precio en AED, no negativo.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	svc := &entity.ServiceItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		IconName:    in.IconName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(svc); err != nil {
		return nil, err
	}
	uc.feed.Publish(events.TableServices, "insert")
	return toServiceResponse(svc), nil
}

// GetByID obtiene un servicio.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	svc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	return toServiceResponse(svc), nil
}

// List lista el catálogo.
func (uc *ServiceUseCase) List(page dto.PageRequest) ([]*dto.ServiceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// Update muta precio y metadatos en sitio.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	svc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	svc.Name = in.Name
	svc.Price = in.Price
	svc.Category = in.Category
	svc.Description = in.Description
	svc.IconName = in.IconName
	svc.UpdatedAt = time.Now()
	if err := uc.repo.Update(svc); err != nil {
		return nil, err
	}
	uc.feed.Publish(events.TableServices, "update")
	return toServiceResponse(svc), nil
}

func toServiceResponse(s *entity.ServiceItem) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Category:    s.Category,
		Description: s.Description,
		IconName:    s.IconName,
	}
}
