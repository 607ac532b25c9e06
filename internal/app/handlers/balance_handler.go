package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/service"
)

type (
	BalanceHandler struct {
		profileService service.ProfileService
		depositService service.DepositService
		contextTimeout time.Duration
	}

	//easyjson:json
	BalanceDto struct {
		Balance float64 `json:"balance"`
	}
	//easyjson:json
	TransactionDto struct {
		UUID          string    `json:"id"`
		Type          string    `json:"type"`
		Amount        float64   `json:"amount"`
		Status        string    `json:"status"`
		DepositMethod *string   `json:"deposit_method,omitempty"`
		Reference     *string   `json:"reference,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}
	//easyjson:json
	TransactionDtoSlice []TransactionDto
)

func NewBalanceHandler(contextTimeoutSec int, profileService service.ProfileService, depositService service.DepositService) *BalanceHandler {
	return &BalanceHandler{
		profileService: profileService,
		depositService: depositService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetBalance godoc
// @Summary Current account balance
// @Tags balance
// @Produce json
// @Success 200 {object} BalanceDto
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/balance [get]
func (bh *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	profile, err := bh.profileService.GetProfile(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	balanceDto := BalanceDto{
		Balance: profile.Balance,
	}
	json, err := balanceDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal json: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(json)
}

// GetTransactions godoc
// @Summary Transaction history of the authenticated user
// @Tags balance
// @Produce json
// @Success 200 {array} TransactionDto
// @Success 204 "No transactions to display"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/transactions [get]
func (bh *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	transactions, err := bh.depositService.GetTransactions(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		fmt.Fprintf(w, "%s", "[]")
		return
	}
	response := mapTransactionsToDtoSlice(transactions)
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
	fmt.Fprintf(w, "%s", rawBytes)
}

func mapTransactionsToDtoSlice(slice *[]models.Transaction) TransactionDtoSlice {
	var responseSlice []TransactionDto
	for _, item := range *slice {
		responseSlice = append(responseSlice, mapTransactionToDto(&item))
	}
	return responseSlice
}

func mapTransactionToDto(item *models.Transaction) TransactionDto {
	return TransactionDto{
		UUID:          item.UUID.String(),
		Type:          item.Type.String(),
		Amount:        item.Amount,
		Status:        item.Status.String(),
		DepositMethod: item.DepositMethod,
		Reference:     item.GatewayReference,
		CreatedAt:     item.CreatedAt,
	}
}
