package service

import (
	"time"

	"github.com/adergachev/smmstore/internal/app/logger"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// OrderCache delays re-polling of an order: adding an order parks it until
// the cache entry expires, at which point eviction pushes it back onto the
// poller channel.
type OrderCache interface {
	AddOrder(order *models.Order)
}

type OrderCacheImpl struct {
	*cache.Cache
	orderChan chan models.Order
}

func NewOrderCache(defaultExpiration, cleanupInterval time.Duration, orderChan chan models.Order) *OrderCacheImpl {
	c := cache.New(defaultExpiration, cleanupInterval)
	c.OnEvicted(func(key string, value interface{}) {
		order, ok := value.(models.Order)
		if !ok {
			return
		}
		orderChan <- order
	})
	return &OrderCacheImpl{
		Cache:     c,
		orderChan: orderChan,
	}
}

func (c *OrderCacheImpl) AddOrder(order *models.Order) {
	err := c.Add(order.UUID.String(), *order, cache.DefaultExpiration)
	if err != nil {
		logger.Log.Debug("Order already queued for polling", zap.String("order_uuid", order.UUID.String()))
	}
}
