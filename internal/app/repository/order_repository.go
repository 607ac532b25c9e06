package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type OrderFilter struct {
	Status string
	Link   string
	Limit  int
	Offset int
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error
	GetOrderByUUID(ctx context.Context, orderUUID *uuid.UUID) (*models.Order, error)
	GetOrdersByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error)
	UpdateStatus(ctx context.Context, orderUUID *uuid.UUID, status models.OrderStatus) error
	SetExternalID(ctx context.Context, orderUUID *uuid.UUID, externalID string) error
	MarkRefunded(ctx context.Context, tx *sqlx.Tx, orderUUID *uuid.UUID) (bool, error)
	CountUnfinishedOrders() (int, error)
	GetUnfinishedOrders(limit int, offset int) (*[]models.Order, error)
	List(ctx context.Context, filter OrderFilter) (*[]models.Order, error)
	GetDB() *sqlx.DB
}

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

func (or *OrderRepositoryImpl) CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	query := `INSERT INTO orders (uuid, user_uuid, service_id, link, quantity, total_cost, status, external_id, refund_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, order.UUID, order.UserUUID, order.ServiceID, order.Link, order.Quantity,
		order.TotalCost, order.Status.String(), order.ExternalID, order.RefundStatus, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (or *OrderRepositoryImpl) GetOrderByUUID(ctx context.Context, orderUUID *uuid.UUID) (*models.Order, error) {
	query := `SELECT * FROM orders WHERE uuid = $1;`
	order := &models.Order{}
	err := or.db.GetContext(ctx, order, query, orderUUID)
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Order not found", http.StatusNotFound)
	}
	return order, nil
}

func (or *OrderRepositoryImpl) GetOrdersByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error) {
	query := `SELECT * FROM orders WHERE user_uuid = $1 order by created_at desc;`
	orders := make([]models.Order, 0)
	err := or.db.SelectContext(ctx, &orders, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("read user orders: %w", err)
	}
	return &orders, nil
}

// UpdateStatus never touches orders already refunded, so a stale vendor
// status cannot resurrect a refunded order.
func (or *OrderRepositoryImpl) UpdateStatus(ctx context.Context, orderUUID *uuid.UUID, status models.OrderStatus) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE uuid = $3 AND refund_status <> $4;`
	_, err := or.db.ExecContext(ctx, query, status.String(), time.Now(), orderUUID, models.RefundIssued)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (or *OrderRepositoryImpl) SetExternalID(ctx context.Context, orderUUID *uuid.UUID, externalID string) error {
	query := `UPDATE orders SET external_id = $1, updated_at = $2 WHERE uuid = $3;`
	_, err := or.db.ExecContext(ctx, query, externalID, time.Now(), orderUUID)
	if err != nil {
		return fmt.Errorf("set order external id: %w", err)
	}
	return nil
}

// MarkRefunded flips the refund status exactly once. False with nil error
// means the order was already refunded and no credit must follow.
func (or *OrderRepositoryImpl) MarkRefunded(ctx context.Context, tx *sqlx.Tx, orderUUID *uuid.UUID) (bool, error) {
	query := `UPDATE orders SET refund_status = $1, status = $2, updated_at = $3
			  WHERE uuid = $4 AND refund_status <> $1;`
	res, err := tx.ExecContext(ctx, query, models.RefundIssued, models.OrderRefunded.String(), time.Now(), orderUUID)
	if err != nil {
		return false, fmt.Errorf("mark order refunded: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark order refunded rows affected: %w", err)
	}
	return affected == 1, nil
}

func (or *OrderRepositoryImpl) CountUnfinishedOrders() (int, error) {
	query := `SELECT count(*) FROM orders WHERE status in ('pending', 'in progress', 'processing', 'partial') AND external_id <> $1`
	var count int
	err := or.db.Get(&count, query, models.ExternalUnsubmitted)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (or *OrderRepositoryImpl) GetUnfinishedOrders(limit int, offset int) (*[]models.Order, error) {
	query := `SELECT * FROM orders WHERE status in ('pending', 'in progress', 'processing', 'partial') AND external_id <> $1 limit $2 offset $3`
	orders := make([]models.Order, 0)
	err := or.db.Select(&orders, query, models.ExternalUnsubmitted, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("read unfinished orders: %w", err)
	}
	return &orders, nil
}

func (or *OrderRepositoryImpl) List(ctx context.Context, filter OrderFilter) (*[]models.Order, error) {
	query := `SELECT * FROM orders WHERE 1=1`
	args := make([]interface{}, 0, 4)
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Link != "" {
		args = append(args, "%"+filter.Link+"%")
		query += fmt.Sprintf(" AND link LIKE $%d", len(args))
	}
	query += " order by created_at desc"
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" limit $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" offset $%d", len(args))

	orders := make([]models.Order, 0)
	err := or.db.SelectContext(ctx, &orders, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return &orders, nil
}

func (or *OrderRepositoryImpl) GetDB() *sqlx.DB {
	return or.db
}
