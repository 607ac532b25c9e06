package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
	"github.com/adergachev/smmstore/internal/app/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService   service.AdminService
	depositService service.DepositService
	refundService  service.RefundService
	orderService   service.OrderService
	contextTimeout time.Duration
}

func NewAdminHandler(contextTimeoutSec int,
	adminService service.AdminService,
	depositService service.DepositService,
	refundService service.RefundService,
	orderService service.OrderService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		depositService: depositService,
		refundService:  refundService,
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// ListTransactions godoc
// @Summary Review console: transaction listing
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param search query string false "Substring match on gateway reference"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} TransactionDto
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /api/admin/transactions [get]
func (ah *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	filter := repository.TxFilter{
		Status:    r.URL.Query().Get("status"),
		Type:      r.URL.Query().Get("type"),
		Reference: r.URL.Query().Get("search"),
		Limit:     queryInt(r, "limit"),
		Offset:    queryInt(r, "offset"),
	}
	transactions, err := ah.adminService.ListTransactions(ctx, filter)
	if err != nil {
		PrepareError(w, err)
		return
	}
	response := mapTransactionsToDtoSlice(transactions)
	if response == nil {
		response = TransactionDtoSlice{}
	}
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

// ListOrders godoc
// @Summary Review console: order listing
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status"
// @Param search query string false "Substring match on link"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} OrderDto
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /api/admin/orders [get]
func (ah *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	filter := repository.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Link:   r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	orders, err := ah.adminService.ListOrders(ctx, filter)
	if err != nil {
		PrepareError(w, err)
		return
	}
	response := mapOrdersToOrderDtoSlice(orders)
	if response == nil {
		response = OrderDtoSlice{}
	}
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

// ApproveTransaction godoc
// @Summary Manually approve a pending deposit
// @Description Runs the same exactly-once approval path as the reconciler.
// @Tags admin
// @Produce json
// @Param uuid path string true "Transaction UUID"
// @Success 200 {object} TransactionDto
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Conflict - already finalized"
// @Security ApiKeyAuth
// @Router /api/admin/transactions/{uuid}/approve [post]
func (ah *AdminHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	txUUID, err := pathUUID(r, "uuid")
	if err != nil {
		PrepareError(w, err)
		return
	}
	transaction, err := ah.depositService.ApproveManually(ctx, txUUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeTransaction(w, transaction)
}

// RejectTransaction godoc
// @Summary Manually reject a pending transaction
// @Tags admin
// @Produce json
// @Param uuid path string true "Transaction UUID"
// @Success 200 {object} TransactionDto
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Conflict - already finalized"
// @Security ApiKeyAuth
// @Router /api/admin/transactions/{uuid}/reject [post]
func (ah *AdminHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	txUUID, err := pathUUID(r, "uuid")
	if err != nil {
		PrepareError(w, err)
		return
	}
	transaction, err := ah.depositService.RejectManually(ctx, txUUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeTransaction(w, transaction)
}

// RefundOrder godoc
// @Summary Refund an order
// @Description Credits the order cost back exactly once; repeated refund
// attempts are rejected without touching the balance.
// @Tags admin
// @Produce json
// @Param uuid path string true "Order UUID"
// @Success 200 {object} TransactionDto "The refund transaction"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Conflict - already refunded"
// @Security ApiKeyAuth
// @Router /api/admin/orders/{uuid}/refund [post]
func (ah *AdminHandler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	orderUUID, err := pathUUID(r, "uuid")
	if err != nil {
		PrepareError(w, err)
		return
	}
	refund, err := ah.refundService.RefundOrder(ctx, orderUUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeTransaction(w, refund)
}

// ReorderOrder godoc
// @Summary Resubmit an order to the fulfillment vendor
// @Tags admin
// @Produce json
// @Param uuid path string true "Order UUID"
// @Success 200 {object} OrderDto
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Conflict - order was refunded"
// @Failure 502 {object} ErrorResponse "Bad Gateway - vendor rejected the order"
// @Security ApiKeyAuth
// @Router /api/admin/orders/{uuid}/reorder [post]
func (ah *AdminHandler) ReorderOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	orderUUID, err := pathUUID(r, "uuid")
	if err != nil {
		PrepareError(w, err)
		return
	}
	order, err := ah.orderService.Resubmit(ctx, orderUUID)
	if err != nil {
		PrepareError(w, err)
		return
	}

	responseItem := OrderDto{
		UUID:         order.UUID.String(),
		ServiceID:    order.ServiceID,
		Link:         order.Link,
		Quantity:     order.Quantity,
		TotalCost:    order.TotalCost,
		Status:       order.Status.String(),
		ExternalID:   order.ExternalID,
		RefundStatus: string(order.RefundStatus),
		CreatedAt:    order.CreatedAt,
	}
	rawBytes, err := responseItem.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func writeTransaction(w http.ResponseWriter, transaction *models.Transaction) {
	dto := mapTransactionToDto(transaction)
	rawBytes, err := dto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func pathUUID(r *http.Request, name string) (*uuid.UUID, error) {
	parsed, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Invalid UUID", http.StatusBadRequest)
	}
	return &parsed, nil
}

func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
