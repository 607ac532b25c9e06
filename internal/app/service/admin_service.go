package service

import (
	"context"

	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// AdminService backs the review console listings.
type AdminService interface {
	ListTransactions(ctx context.Context, filter repository.TxFilter) (*[]models.Transaction, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) (*[]models.Order, error)
}

type AdminServiceImpl struct {
	txRepo    repository.TransactionRepository
	orderRepo repository.OrderRepository
}

func NewAdminService(txRepo repository.TransactionRepository, orderRepo repository.OrderRepository) *AdminServiceImpl {
	return &AdminServiceImpl{
		txRepo:    txRepo,
		orderRepo: orderRepo,
	}
}

func (as *AdminServiceImpl) ListTransactions(ctx context.Context, filter repository.TxFilter) (*[]models.Transaction, error) {
	filter.Limit = clampLimit(filter.Limit)
	return as.txRepo.List(ctx, filter)
}

func (as *AdminServiceImpl) ListOrders(ctx context.Context, filter repository.OrderFilter) (*[]models.Order, error) {
	filter.Limit = clampLimit(filter.Limit)
	return as.orderRepo.List(ctx, filter)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
