package service

import (
	"context"

	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
)

type CatalogService interface {
	ListServices(ctx context.Context) (*[]models.Service, error)
}

type CatalogServiceImpl struct {
	serviceRepo repository.ServiceRepository
}

func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

func (cs *CatalogServiceImpl) ListServices(ctx context.Context) (*[]models.Service, error) {
	return cs.serviceRepo.ListActive(ctx)
}
