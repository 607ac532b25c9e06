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
	"github.com/adergachev/smmstore/internal/app/service/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userUID *uuid.UUID, serviceID int64, link string, quantity int64) (*[]models.Order, error)
	GetOrders(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error)
	Resubmit(ctx context.Context, orderUUID *uuid.UUID) (*models.Order, error)
}

type OrderServiceImpl struct {
	orderRepo         repository.OrderRepository
	serviceRepo       repository.ServiceRepository
	txRepo            repository.TransactionRepository
	profileService    ProfileService
	fulfillmentClient clients.FulfillmentClient
	orderChan         chan models.Order
}

func NewOrderService(orderRepo repository.OrderRepository,
	serviceRepo repository.ServiceRepository,
	txRepo repository.TransactionRepository,
	profileService ProfileService,
	fulfillmentClient clients.FulfillmentClient,
	processOrderChan chan models.Order) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:         orderRepo,
		serviceRepo:       serviceRepo,
		txRepo:            txRepo,
		profileService:    profileService,
		fulfillmentClient: fulfillmentClient,
		orderChan:         processOrderChan,
	}
}

// orderLeg is one order row to be created: a plain service yields one leg,
// a combo yields one leg per component.
type orderLeg struct {
	serviceID int64
	quantity  int64
	cost      float64
}

// CreateOrder validates the quantity against the catalog, debits the balance
// and writes the order rows plus one order-type ledger transaction in a
// single database transaction. External submission happens after commit and
// is best-effort: a vendor failure leaves the order locally intact with the
// unsubmitted sentinel.
func (os *OrderServiceImpl) CreateOrder(ctx context.Context, userUID *uuid.UUID, serviceID int64, link string, quantity int64) (*[]models.Order, error) {
	svc, err := os.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		msg := "service is not available"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}
	if quantity < svc.MinQuantity || quantity > svc.MaxQuantity {
		msg := fmt.Sprintf("quantity must be between %d and %d", svc.MinQuantity, svc.MaxQuantity)
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}
	if link == "" {
		msg := "link is required"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
	}

	legs, totalCost, err := os.resolveLegs(ctx, svc, quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orders := make([]models.Order, 0, len(legs))
	for _, leg := range legs {
		orders = append(orders, models.Order{
			UUID:         uuid.New(),
			UserUUID:     *userUID,
			ServiceID:    leg.serviceID,
			Link:         link,
			Quantity:     leg.quantity,
			TotalCost:    leg.cost,
			Status:       models.OrderPending,
			ExternalID:   models.ExternalUnsubmitted,
			RefundStatus: models.RefundNone,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	tx, err := os.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = os.profileService.Debit(ctx, tx, userUID, totalCost); err != nil {
		return nil, err
	}
	for i := range orders {
		if err = os.orderRepo.CreateOrder(ctx, tx, &orders[i]); err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}
	debit := &models.Transaction{
		UUID:      uuid.New(),
		UserUUID:  *userUID,
		Type:      models.TxOrder,
		Amount:    totalCost,
		Status:    models.TxApproved,
		OrderUUID: &orders[0].UUID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = os.txRepo.Create(ctx, tx, debit); err != nil {
		return nil, fmt.Errorf("create order transaction: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	for i := range orders {
		os.submit(ctx, &orders[i])
	}
	return &orders, nil
}

func (os *OrderServiceImpl) resolveLegs(ctx context.Context, svc *models.Service, quantity int64) ([]orderLeg, float64, error) {
	if svc.Kind != models.KindCombo {
		cost := svc.Rate * float64(quantity) / 1000
		return []orderLeg{{serviceID: svc.ID, quantity: quantity, cost: cost}}, cost, nil
	}

	components, err := os.serviceRepo.GetComponents(ctx, svc.ID)
	if err != nil {
		return nil, 0, err
	}
	if len(*components) == 0 {
		msg := "combo service has no components"
		return nil, 0, appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}

	legs := make([]orderLeg, 0, len(*components))
	var totalCost float64
	for _, component := range *components {
		componentSvc, err := os.serviceRepo.GetByID(ctx, component.ComponentServiceID)
		if err != nil {
			return nil, 0, err
		}
		legQuantity := int64(float64(quantity) * component.Multiplier)
		cost := componentSvc.Rate * float64(legQuantity) / 1000
		legs = append(legs, orderLeg{serviceID: componentSvc.ID, quantity: legQuantity, cost: cost})
		totalCost += cost
	}
	return legs, totalCost, nil
}

// submit pushes the order to the fulfillment vendor. Never fails the local
// order: placement problems are recorded and retried by hand.
func (os *OrderServiceImpl) submit(ctx context.Context, order *models.Order) {
	externalID, err := os.fulfillmentClient.PlaceOrder(order.ServiceID, order.Link, order.Quantity)
	if err != nil {
		logger.Log.Warn("fulfillment submission failed",
			zap.String("order", order.UUID.String()),
			zap.Error(err))
		return
	}
	if err = os.orderRepo.SetExternalID(ctx, &order.UUID, externalID); err != nil {
		logger.Log.Error("failed to store external order id",
			zap.String("order", order.UUID.String()),
			zap.Error(err))
		return
	}
	order.ExternalID = externalID
	os.orderChan <- *order // hand over to the status poller
}

func (os *OrderServiceImpl) GetOrders(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error) {
	return os.orderRepo.GetOrdersByUserUID(ctx, userUID)
}

// Resubmit re-sends an order the vendor never accepted (admin action).
func (os *OrderServiceImpl) Resubmit(ctx context.Context, orderUUID *uuid.UUID) (*models.Order, error) {
	order, err := os.orderRepo.GetOrderByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if order.RefundStatus == models.RefundIssued {
		msg := "refunded orders cannot be resubmitted"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
	}
	os.submit(ctx, order)
	if order.ExternalID == models.ExternalUnsubmitted {
		msg := "fulfillment provider rejected the order"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadGateway)
	}
	return order, nil
}
