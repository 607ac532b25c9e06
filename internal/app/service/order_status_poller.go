package service

import (
	"context"
	"strings"
	"time"

	"github.com/adergachev/smmstore/internal/app/logger"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
	"github.com/adergachev/smmstore/internal/app/service/clients"
	"go.uber.org/zap"
)

const pollerBatchSize = 20

// OrderStatusPoller keeps local order rows in sync with the fulfillment
// vendor. Orders arrive on the channel (fresh submissions plus periodic
// sweeps of unfinished rows) and vendor lookups are paced by the client's
// rate limiter. Transient failures park the order in the cache, whose
// eviction feeds the channel again.
type OrderStatusPoller struct {
	orderRepo         repository.OrderRepository
	orderCache        OrderCache
	fulfillmentClient clients.FulfillmentClient
	processOrderChan  chan models.Order
	sweepInterval     time.Duration
}

func NewOrderStatusPoller(orderRepo repository.OrderRepository,
	orderCache OrderCache,
	fulfillmentClient clients.FulfillmentClient,
	processOrderChan chan models.Order,
	sweepInterval time.Duration) *OrderStatusPoller {
	p := &OrderStatusPoller{
		orderRepo:         orderRepo,
		orderCache:        orderCache,
		fulfillmentClient: fulfillmentClient,
		processOrderChan:  processOrderChan,
		sweepInterval:     sweepInterval,
	}
	p.enqueueUnfinishedOrders()
	return p
}

func (p *OrderStatusPoller) enqueueUnfinishedOrders() {
	logger.Log.Info("start sweeping unfinished orders")
	totalOrders, err := p.orderRepo.CountUnfinishedOrders()
	if err != nil {
		logger.Log.Error("failed to count unfinished orders", zap.Error(err))
		return
	}
	cnt := 0
	for cnt < totalOrders {
		orders, err := p.orderRepo.GetUnfinishedOrders(pollerBatchSize, cnt)
		if err != nil {
			logger.Log.Error("failed to get unfinished orders", zap.Error(err))
			return
		}
		for _, order := range *orders {
			p.orderCache.AddOrder(&order)
		}
		cnt += pollerBatchSize
	}
	logger.Log.Info("queued unfinished orders", zap.Int("total_orders", totalOrders))
}

func (p *OrderStatusPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case order := <-p.processOrderChan:
			p.pollOrder(ctx, &order)
		case <-ticker.C:
			p.enqueueUnfinishedOrders()
		case <-ctx.Done():
			return
		}
	}
}

func (p *OrderStatusPoller) pollOrder(ctx context.Context, order *models.Order) {
	// Refunded orders must never be resurrected by a stale vendor status.
	if order.RefundStatus == models.RefundIssued || order.ExternalID == models.ExternalUnsubmitted {
		return
	}
	logger.Log.Debug("polling order", zap.String("order_uuid", order.UUID.String()))

	statusDto, err := p.fulfillmentClient.GetOrderStatus(order.ExternalID)
	if err != nil {
		logger.Log.Debug("error getting order status", zap.Error(err))
		p.orderCache.AddOrder(order)
		return
	}

	status := mapFulfillmentStatus(statusDto.Status)
	if status == order.Status {
		if !terminalOrderStatus(status) {
			p.orderCache.AddOrder(order)
		}
		return
	}

	if err = p.orderRepo.UpdateStatus(ctx, &order.UUID, status); err != nil {
		logger.Log.Error("failed to update order status", zap.Error(err))
		p.orderCache.AddOrder(order)
		return
	}
	order.Status = status
	if !terminalOrderStatus(status) {
		p.orderCache.AddOrder(order)
	}
}

func mapFulfillmentStatus(vendorStatus string) models.OrderStatus {
	switch strings.ToLower(vendorStatus) {
	case "pending":
		return models.OrderPending
	case "in progress", "inprogress":
		return models.OrderInProgress
	case "processing":
		return models.OrderProcessing
	case "partial":
		return models.OrderPartial
	case "completed":
		return models.OrderCompleted
	case "canceled", "cancelled":
		return models.OrderCanceled
	}
	return models.OrderProcessing
}

func terminalOrderStatus(status models.OrderStatus) bool {
	switch status {
	case models.OrderCompleted, models.OrderCanceled, models.OrderPartial, models.OrderRefunded:
		return true
	}
	return false
}
