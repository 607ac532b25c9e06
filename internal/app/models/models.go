package models

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID         uuid.UUID `db:"uuid"`
		Email        string    `db:"email"`
		PasswordHash string    `db:"password_hash"`
		CreatedAt    time.Time `db:"created_at"`
	}
	Profile struct {
		ID        int64     `db:"id"`
		UserUUID  uuid.UUID `db:"user_uuid"`
		Balance   float64   `db:"balance"`
		Role      Role      `db:"role"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	Transaction struct {
		UUID             uuid.UUID  `db:"uuid"`
		UserUUID         uuid.UUID  `db:"user_uuid"`
		Type             TxType     `db:"type"`
		Amount           float64    `db:"amount"`
		Status           TxStatus   `db:"status"`
		DepositMethod    *string    `db:"deposit_method"`
		GatewayReference *string    `db:"gateway_reference"`
		OrderUUID        *uuid.UUID `db:"order_uuid"`
		CreatedAt        time.Time  `db:"created_at"`
		UpdatedAt        time.Time  `db:"updated_at"`
	}
	Order struct {
		UUID         uuid.UUID    `db:"uuid"`
		UserUUID     uuid.UUID    `db:"user_uuid"`
		ServiceID    int64        `db:"service_id"`
		Link         string       `db:"link"`
		Quantity     int64        `db:"quantity"`
		TotalCost    float64      `db:"total_cost"`
		Status       OrderStatus  `db:"status"`
		ExternalID   string       `db:"external_id"`
		RefundStatus RefundStatus `db:"refund_status"`
		CreatedAt    time.Time    `db:"created_at"`
		UpdatedAt    time.Time    `db:"updated_at"`
	}
	Service struct {
		ID          int64       `db:"id"`
		Name        string      `db:"name"`
		Category    string      `db:"category"`
		Rate        float64     `db:"rate"`
		MinQuantity int64       `db:"min_quantity"`
		MaxQuantity int64       `db:"max_quantity"`
		Kind        ServiceKind `db:"kind"`
		Active      bool        `db:"active"`
		CreatedAt   time.Time   `db:"created_at"`
	}
	// ServiceComponent is one leg of a combo service. The ordered quantity
	// is multiplied by Multiplier for each component.
	ServiceComponent struct {
		ID                 int64   `db:"id"`
		ComboServiceID     int64   `db:"combo_service_id"`
		ComponentServiceID int64   `db:"component_service_id"`
		Multiplier         float64 `db:"multiplier"`
	}
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type TxType string

func (t TxType) String() string {
	return string(t)
}

const (
	TxDeposit TxType = "deposit"
	TxOrder   TxType = "order"
	TxRefund  TxType = "refund"
)

type TxStatus string

func (s TxStatus) String() string {
	return string(s)
}

// Terminal reports whether the status can never change again.
func (s TxStatus) Terminal() bool {
	return s == TxApproved || s == TxRejected
}

const (
	TxPending  TxStatus = "pending"
	TxApproved TxStatus = "approved"
	TxRejected TxStatus = "rejected"
)

type OrderStatus string

func (s OrderStatus) String() string {
	return string(s)
}

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in progress"
	OrderProcessing OrderStatus = "processing"
	OrderPartial    OrderStatus = "partial"
	OrderCompleted  OrderStatus = "completed"
	OrderCanceled   OrderStatus = "canceled"
	OrderRefunded   OrderStatus = "refunded"
)

type RefundStatus string

const (
	RefundNone   RefundStatus = "none"
	RefundIssued RefundStatus = "refunded"
)

type ServiceKind string

const (
	KindDefault ServiceKind = "default"
	KindCombo   ServiceKind = "combo"
)

// ExternalUnsubmitted marks an order the fulfillment vendor never accepted;
// the status poller skips it until an admin resubmits.
const ExternalUnsubmitted = "unsubmitted"
