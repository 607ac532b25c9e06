package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/service"
)

type (
	OrdersHandler struct {
		orderService   service.OrderService
		contextTimeout time.Duration
	}

	//easyjson:json
	OrderRequestDto struct {
		ServiceID int64  `json:"service_id"`
		Link      string `json:"link"`
		Quantity  int64  `json:"quantity"`
	}
	//easyjson:json
	OrderDto struct {
		UUID         string    `json:"id"`
		ServiceID    int64     `json:"service_id"`
		Link         string    `json:"link"`
		Quantity     int64     `json:"quantity"`
		TotalCost    float64   `json:"total_cost"`
		Status       string    `json:"status"`
		ExternalID   string    `json:"external_id"`
		RefundStatus string    `json:"refund_status"`
		CreatedAt    time.Time `json:"created_at"`
	}
	//easyjson:json
	OrderDtoSlice []OrderDto
)

func NewOrdersHandler(contextTimeoutSec int, orderService service.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateOrder godoc
// @Summary Place an order against the service catalog
// @Description Validates quantity against the service limits, debits the
// balance and creates the order rows (a combo service fans out into one
// order per component). The fulfillment vendor is contacted best-effort.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body OrderRequestDto true "Service, link and quantity"
// @Success 201 {array} OrderDto
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Payment Required - insufficient funds"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - quantity out of range"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders [post]
func (oh *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := OrderRequestDto{}
	err = request.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	orders, err := oh.orderService.CreateOrder(ctx, userUID, request.ServiceID, request.Link, request.Quantity)
	if err != nil {
		PrepareError(w, err)
		return
	}

	response := mapOrdersToOrderDtoSlice(orders)
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(rawBytes)
}

// GetOrders godoc
// @Summary List the authenticated user's orders
// @Tags orders
// @Produce json
// @Success 200 {array} OrderDto
// @Success 204 "No orders to display"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders [get]
func (oh *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()

	userUID := appContext.UserUID(r.Context())

	orders, err := oh.orderService.GetOrders(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := mapOrdersToOrderDtoSlice(orders)
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func mapOrdersToOrderDtoSlice(slice *[]models.Order) OrderDtoSlice {
	var responseSlice []OrderDto
	for _, item := range *slice {
		responseItem := OrderDto{
			UUID:         item.UUID.String(),
			ServiceID:    item.ServiceID,
			Link:         item.Link,
			Quantity:     item.Quantity,
			TotalCost:    item.TotalCost,
			Status:       item.Status.String(),
			ExternalID:   item.ExternalID,
			RefundStatus: string(item.RefundStatus),
			CreatedAt:    item.CreatedAt,
		}
		responseSlice = append(responseSlice, responseItem)
	}
	return responseSlice
}
