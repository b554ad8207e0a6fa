package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/cloudonetech/console-api/internal/domain/entity"
	"github.com/cloudonetech/console-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un servicio del catálogo.
func (r *ServiceRepo) Create(service *entity.ServiceItem) error {
	query := `
		INSERT INTO services (id, name, price, category, description, icon_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Price, service.Category, service.Description, service.IconName,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.ServiceItem, error) {
	query := `
		SELECT id, name, price, category, description, icon_name, created_at, updated_at
		FROM services WHERE id = $1`
	var s entity.ServiceItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Price, &s.Category, &s.Description, &s.IconName, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List lista el catálogo con paginación, ordenado por nombre.
func (r *ServiceRepo) List(limit, offset int) ([]*entity.ServiceItem, error) {
	query := `
		SELECT id, name, price, category, description, icon_name, created_at, updated_at
		FROM services ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceItem
	for rows.Next() {
		var s entity.ServiceItem
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Category, &s.Description, &s.IconName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un servicio. Los documentos ya emitidos no se tocan: las
// líneas congelaron nombre y precio al momento de crearse.
func (r *ServiceRepo) Update(service *entity.ServiceItem) error {
	query := `
		UPDATE services
		SET name = $2, price = $3, category = $4, description = $5, icon_name = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Price, service.Category, service.Description, service.IconName,
		service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}
