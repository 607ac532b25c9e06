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
	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const depositReferenceLen = 16

// DepositService owns the deposit lifecycle: a pending transaction is
// created at initiation, and exactly one balance credit happens when the
// gateway reports success, no matter how many notifications arrive or in
// which order. The gateway reference is the idempotency key; its unique
// constraint plus the conditional pending->approved flip carry the
// exactly-once guarantee.
type DepositService interface {
	InitiateDeposit(ctx context.Context, userUID *uuid.UUID, amount float64, method string) (*models.Transaction, error)
	ConfirmDeposit(ctx context.Context, callerUID *uuid.UUID, gateway, reference string) (*models.Transaction, error)
	ApproveManually(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error)
	RejectManually(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error)
	GetTransactions(ctx context.Context, userUID *uuid.UUID) (*[]models.Transaction, error)
}

type DepositServiceImpl struct {
	txRepo           repository.TransactionRepository
	profileService   ProfileService
	gatewayClient    clients.GatewayClient
	minDepositAmount float64
}

func NewDepositService(txRepo repository.TransactionRepository,
	profileService ProfileService,
	gatewayClient clients.GatewayClient,
	minDepositAmount float64) *DepositServiceImpl {
	return &DepositServiceImpl{
		txRepo:           txRepo,
		profileService:   profileService,
		gatewayClient:    gatewayClient,
		minDepositAmount: minDepositAmount,
	}
}

func (ds *DepositServiceImpl) InitiateDeposit(ctx context.Context, userUID *uuid.UUID, amount float64, method string) (*models.Transaction, error) {
	if !clients.KnownGateway(method) {
		msg := "unknown deposit method"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
	}
	if amount < ds.minDepositAmount {
		msg := fmt.Sprintf("minimum deposit amount is %.2f", ds.minDepositAmount)
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
	}

	db := ds.txRepo.GetDB()
	// Reference collisions are practically impossible, but a retry keeps the
	// unique constraint from ever surfacing to the user.
	for attempt := 0; attempt < 3; attempt++ {
		reference := goluhn.Generate(depositReferenceLen)
		now := time.Now()
		transaction := &models.Transaction{
			UUID:             uuid.New(),
			UserUUID:         *userUID,
			Type:             models.TxDeposit,
			Amount:           amount,
			Status:           models.TxPending,
			DepositMethod:    &method,
			GatewayReference: &reference,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("begin transaction: %w", err)
		}
		err = ds.txRepo.Create(ctx, tx, transaction)
		if err != nil {
			_ = tx.Rollback()
			if errors.Is(err, repository.ErrDuplicateReference) {
				continue
			}
			return nil, fmt.Errorf("create deposit transaction: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit transaction: %w", err)
		}
		return transaction, nil
	}
	return nil, appErrors.New(errors.New("reference generation exhausted"), "Unable to create deposit")
}

// ConfirmDeposit resolves a gateway notification to exactly one transaction.
// callerUID is the authenticated user for the client-callback path and nil
// for the webhook path. The payment is always re-verified against the
// vendor's server API; the notification body is never trusted on its own.
func (ds *DepositServiceImpl) ConfirmDeposit(ctx context.Context, callerUID *uuid.UUID, gateway, reference string) (*models.Transaction, error) {
	transaction, err := ds.txRepo.GetByReference(ctx, reference)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	if transaction != nil {
		// A reference resolving to another user's transaction is a hard
		// error, never a best-effort match.
		if callerUID != nil && transaction.UserUUID != *callerUID {
			logger.Log.Warn("cross-user gateway reference",
				zap.String("reference", reference),
				zap.String("caller", callerUID.String()),
				zap.String("owner", transaction.UserUUID.String()))
			msg := "payment reference belongs to another account"
			return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
		}
		if transaction.Status.Terminal() {
			return transaction, nil
		}
	}

	result, err := ds.gatewayClient.VerifyPayment(gateway, reference)
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Unable to verify payment, please contact support", http.StatusBadGateway)
	}

	if transaction == nil {
		transaction, err = ds.recordVerifiedDeposit(ctx, callerUID, gateway, reference, result)
		if err != nil {
			return nil, err
		}
		if transaction.Status.Terminal() {
			return transaction, nil
		}
	}

	switch result.Status {
	case clients.PaymentSuccess:
		return ds.approve(ctx, transaction, result.Amount)
	case clients.PaymentFailed:
		return ds.reject(ctx, transaction)
	default:
		// still pending at the vendor, nothing to finalize yet
		return transaction, nil
	}
}

// recordVerifiedDeposit covers a notification for a reference we have no row
// for (the initiation write was lost, or the webhook outran it). The insert
// races the concurrent webhook delivery; losing the race on the unique
// reference means the row exists now, so re-fetch and continue.
func (ds *DepositServiceImpl) recordVerifiedDeposit(ctx context.Context, callerUID *uuid.UUID, gateway, reference string, result *clients.VerificationResult) (*models.Transaction, error) {
	if callerUID == nil {
		msg := "unknown payment reference"
		logger.Log.Warn("webhook for unknown reference", zap.String("reference", reference), zap.String("gateway", gateway))
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusNotFound)
	}
	if result.Status == clients.PaymentFailed {
		msg := "payment was not completed"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusPaymentRequired)
	}

	now := time.Now()
	transaction := &models.Transaction{
		UUID:             uuid.New(),
		UserUUID:         *callerUID,
		Type:             models.TxDeposit,
		Amount:           result.Amount,
		Status:           models.TxPending,
		DepositMethod:    &gateway,
		GatewayReference: &reference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	db := ds.txRepo.GetDB()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	err = ds.txRepo.Create(ctx, tx, transaction)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, repository.ErrDuplicateReference) {
			existing, getErr := ds.txRepo.GetByReference(ctx, reference)
			if getErr != nil {
				return nil, getErr
			}
			if existing.UserUUID != *callerUID {
				msg := "payment reference belongs to another account"
				return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("record verified deposit: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return transaction, nil
}

// approve flips the transaction and credits the balance in one database
// transaction. A flip that matches no row means a concurrent notification
// already finalized it; the credit is skipped and the stored row returned.
func (ds *DepositServiceImpl) approve(ctx context.Context, transaction *models.Transaction, amount float64) (*models.Transaction, error) {
	db := ds.txRepo.GetDB()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	flipped, err := ds.txRepo.MarkApproved(ctx, tx, &transaction.UUID, amount)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return ds.txRepo.GetByUUID(ctx, &transaction.UUID)
	}
	if _, err = ds.profileService.Credit(ctx, tx, &transaction.UserUUID, amount); err != nil {
		return nil, fmt.Errorf("credit profile: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	transaction.Status = models.TxApproved
	transaction.Amount = amount
	logger.Log.Info("deposit approved",
		zap.String("transaction", transaction.UUID.String()),
		zap.Float64("amount", amount))
	return transaction, nil
}

func (ds *DepositServiceImpl) reject(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	db := ds.txRepo.GetDB()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	flipped, err := ds.txRepo.MarkRejected(ctx, tx, &transaction.UUID)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return ds.txRepo.GetByUUID(ctx, &transaction.UUID)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	transaction.Status = models.TxRejected
	return transaction, nil
}

func (ds *DepositServiceImpl) ApproveManually(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error) {
	transaction, err := ds.txRepo.GetByUUID(ctx, txUUID)
	if err != nil {
		return nil, err
	}
	if transaction.Type != models.TxDeposit {
		msg := "only deposit transactions can be approved"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}
	if transaction.Status.Terminal() {
		msg := "transaction already finalized"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
	}
	return ds.approve(ctx, transaction, transaction.Amount)
}

func (ds *DepositServiceImpl) RejectManually(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error) {
	transaction, err := ds.txRepo.GetByUUID(ctx, txUUID)
	if err != nil {
		return nil, err
	}
	if transaction.Status.Terminal() {
		msg := "transaction already finalized"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusConflict)
	}
	return ds.reject(ctx, transaction)
}

func (ds *DepositServiceImpl) GetTransactions(ctx context.Context, userUID *uuid.UUID) (*[]models.Transaction, error) {
	return ds.txRepo.GetByUserUID(ctx, userUID)
}

func isNotFound(err error) bool {
	appErr := &appErrors.ResponseCodeError{}
	return errors.As(err, appErr) && appErr.Code() == http.StatusNotFound
}
