package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/logger"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RefundService interface {
	RefundOrder(ctx context.Context, orderUUID *uuid.UUID) (*models.Transaction, error)
}

type RefundServiceImpl struct {
	orderRepo      repository.OrderRepository
	txRepo         repository.TransactionRepository
	profileService ProfileService
}

func NewRefundService(orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
	profileService ProfileService) *RefundServiceImpl {
	return &RefundServiceImpl{
		orderRepo:      orderRepo,
		txRepo:         txRepo,
		profileService: profileService,
	}
}

// RefundOrder credits the order cost back exactly once. The conditional
// refund-status flip is the guard: a second attempt matches no row and
// returns a conflict without touching the balance.
func (rs *RefundServiceImpl) RefundOrder(ctx context.Context, orderUUID *uuid.UUID) (*models.Transaction, error) {
	order, err := rs.orderRepo.GetOrderByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}

	tx, err := rs.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	flipped, err := rs.orderRepo.MarkRefunded(ctx, tx, orderUUID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		msg := "order already refunded"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
	}

	if _, err = rs.profileService.Credit(ctx, tx, &order.UserUUID, order.TotalCost); err != nil {
		return nil, fmt.Errorf("credit profile: %w", err)
	}

	now := time.Now()
	refund := &models.Transaction{
		UUID:      uuid.New(),
		UserUUID:  order.UserUUID,
		Type:      models.TxRefund,
		Amount:    order.TotalCost,
		Status:    models.TxApproved,
		OrderUUID: orderUUID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = rs.txRepo.Create(ctx, tx, refund); err != nil {
		return nil, fmt.Errorf("create refund transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	logger.Log.Info("order refunded",
		zap.String("order", orderUUID.String()),
		zap.Float64("amount", order.TotalCost))
	return refund, nil
}
