package handlers

import (
	"errors"
	"io"
	"net/http"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/service/clients"
	"github.com/go-chi/chi/v5"
)

type (
	GatewayHandler struct {
		gatewayClient clients.GatewayClient
	}

	//easyjson:json
	GatewayStatusRequestDto struct {
		Reference string `json:"reference"`
	}
)

func NewGatewayHandler(gatewayClient clients.GatewayClient) *GatewayHandler {
	return &GatewayHandler{gatewayClient: gatewayClient}
}

// CheckStatus godoc
// @Summary Proxy a payment status check to the vendor
// @Description Passes the reference through to the vendor's verify API and
// returns the vendor JSON untouched. Sends permissive CORS headers; OPTIONS
// preflights get an empty 200.
// @Tags gateways
// @Accept json
// @Produce json
// @Param gateway path string true "Gateway name" Enums(paystack, korapay, moolre, hubtel)
// @Param request body GatewayStatusRequestDto true "Payment reference"
// @Success 200 {string} string "Vendor response"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 502 {object} ErrorResponse "Bad Gateway"
// @Router /api/gateways/{gateway}/status [post]
func (gh *GatewayHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	gateway := chi.URLParam(r, "gateway")
	if !clients.KnownGateway(gateway) {
		msg := "unknown gateway"
		PrepareError(w, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := GatewayStatusRequestDto{}
	err = request.UnmarshalJSON(body)
	if err != nil || request.Reference == "" {
		err = appErrors.NewWithCode(err, "Reference is required", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	status, vendorBody, err := gh.gatewayClient.CheckStatus(gateway, request.Reference)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Gateway request failed", http.StatusBadGateway))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(vendorBody)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
