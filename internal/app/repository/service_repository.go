package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/jmoiron/sqlx"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID int64) (*models.Service, error)
	ListActive(ctx context.Context) (*[]models.Service, error)
	GetComponents(ctx context.Context, comboServiceID int64) (*[]models.ServiceComponent, error)
}

type ServiceRepositoryImpl struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) *ServiceRepositoryImpl {
	return &ServiceRepositoryImpl{db: db}
}

func (sr *ServiceRepositoryImpl) GetByID(ctx context.Context, serviceID int64) (*models.Service, error) {
	query := `SELECT * FROM services WHERE id = $1;`
	service := &models.Service{}
	err := sr.db.GetContext(ctx, service, query, serviceID)
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Service not found", http.StatusNotFound)
	}
	return service, nil
}

func (sr *ServiceRepositoryImpl) ListActive(ctx context.Context) (*[]models.Service, error) {
	query := `SELECT * FROM services WHERE active order by category, id;`
	services := make([]models.Service, 0)
	err := sr.db.SelectContext(ctx, &services, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &services, nil
		}
		return nil, fmt.Errorf("list services: %w", err)
	}
	return &services, nil
}

func (sr *ServiceRepositoryImpl) GetComponents(ctx context.Context, comboServiceID int64) (*[]models.ServiceComponent, error) {
	query := `SELECT * FROM service_components WHERE combo_service_id = $1 order by id;`
	components := make([]models.ServiceComponent, 0)
	err := sr.db.SelectContext(ctx, &components, query, comboServiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &components, nil
		}
		return nil, fmt.Errorf("read service components: %w", err)
	}
	return &components, nil
}
