package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/service"
	"github.com/ShiraazMoollatjie/goluhn"
)

type (
	DepositsHandler struct {
		depositService service.DepositService
		contextTimeout time.Duration
	}

	//easyjson:json
	DepositRequestDto struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	}
	//easyjson:json
	DepositResponseDto struct {
		TransactionID string  `json:"transaction_id"`
		Reference     string  `json:"reference"`
		Amount        float64 `json:"amount"`
		Method        string  `json:"method"`
		Status        string  `json:"status"`
	}
	//easyjson:json
	DepositConfirmDto struct {
		Reference string `json:"reference"`
		Gateway   string `json:"gateway"`
	}
)

func NewDepositsHandler(contextTimeoutSec int, depositService service.DepositService) *DepositsHandler {
	return &DepositsHandler{
		depositService: depositService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateDeposit godoc
// @Summary Initiate a deposit
// @Description Creates a pending deposit transaction and returns the reference
// the payment widget must be launched with. Amounts below the configured
// minimum are rejected without creating anything.
// @Tags deposits
// @Accept json
// @Produce json
// @Param deposit body DepositRequestDto true "Amount and gateway"
// @Success 201 {object} DepositResponseDto
// @Failure 400 {object} ErrorResponse "Bad Request - below minimum or unknown method"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/deposits [post]
func (dh *DepositsHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), dh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := DepositRequestDto{}
	err = request.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	transaction, err := dh.depositService.InitiateDeposit(ctx, userUID, request.Amount, request.Method)
	if err != nil {
		PrepareError(w, err)
		return
	}

	response := DepositResponseDto{
		TransactionID: transaction.UUID.String(),
		Reference:     *transaction.GatewayReference,
		Amount:        transaction.Amount,
		Method:        *transaction.DepositMethod,
		Status:        transaction.Status.String(),
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal response: %w", err))
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

// ConfirmDeposit godoc
// @Summary Confirm a deposit after the payment widget callback
// @Description Re-verifies the payment with the gateway's server API and
// credits the balance exactly once. Safe to call repeatedly.
// @Tags deposits
// @Accept json
// @Produce json
// @Param confirmation body DepositConfirmDto true "Gateway and reference"
// @Success 200 {object} DepositResponseDto
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown payment reference"
// @Failure 409 {object} ErrorResponse "Conflict - reference belongs to another account"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - malformed reference"
// @Failure 502 {object} ErrorResponse "Bad Gateway - vendor verification failed"
// @Security ApiKeyAuth
// @Router /api/deposits/confirm [post]
func (dh *DepositsHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), dh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := DepositConfirmDto{}
	err = request.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	// References are generated Luhn-valid; anything else is garbage and
	// never reaches the database.
	err = goluhn.Validate(request.Reference)
	if err != nil {
		err = appErrors.NewWithCode(err, "Invalid payment reference", http.StatusUnprocessableEntity)
		PrepareError(w, err)
		return
	}

	transaction, err := dh.depositService.ConfirmDeposit(ctx, userUID, request.Gateway, request.Reference)
	if err != nil {
		PrepareError(w, err)
		return
	}

	response := DepositResponseDto{
		TransactionID: transaction.UUID.String(),
		Reference:     request.Reference,
		Amount:        transaction.Amount,
		Status:        transaction.Status.String(),
	}
	if transaction.DepositMethod != nil {
		response.Method = *transaction.DepositMethod
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal response: %w", err))
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
