package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"net/http"
	"time"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/logger"
	"github.com/adergachev/smmstore/internal/app/service"
	"github.com/adergachev/smmstore/internal/app/service/clients"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type (
	WebhooksHandler struct {
		depositService    service.DepositService
		paystackSecretKey string
		korapaySecretKey  string
		contextTimeout    time.Duration
	}

	//easyjson:json
	WebhookEventDto struct {
		Event string         `json:"event"`
		Data  WebhookDataDto `json:"data"`
	}
	//easyjson:json
	WebhookDataDto struct {
		Reference string  `json:"reference"`
		Status    string  `json:"status"`
		Amount    float64 `json:"amount"`
	}
	//easyjson:json
	FlatWebhookDto struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	}
)

func NewWebhooksHandler(contextTimeoutSec int, depositService service.DepositService, paystackSecretKey, korapaySecretKey string) *WebhooksHandler {
	return &WebhooksHandler{
		depositService:    depositService,
		paystackSecretKey: paystackSecretKey,
		korapaySecretKey:  korapaySecretKey,
		contextTimeout:    time.Duration(contextTimeoutSec) * time.Second,
	}
}

// HandleWebhook godoc
// @Summary Payment gateway webhook sink
// @Description Receives asynchronous payment notifications. The payload is
// only used to extract the reference; the payment itself is re-verified
// against the vendor's server API before any balance change.
// @Tags webhooks
// @Accept json
// @Param gateway path string true "Gateway name" Enums(paystack, korapay, moolre, hubtel)
// @Success 200 "Processed (or already processed)"
// @Failure 400 {object} ErrorResponse "Bad Request - unknown gateway or bad payload"
// @Failure 401 {object} ErrorResponse "Unauthorized - signature mismatch"
// @Failure 500 {object} ErrorResponse "Internal Server Error - vendor should retry"
// @Router /api/webhooks/{gateway} [post]
func (wh *WebhooksHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), wh.contextTimeout)
	defer cancel()

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

	if err = wh.verifySignature(gateway, r, body); err != nil {
		PrepareError(w, err)
		return
	}

	reference, err := extractReference(gateway, body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse webhook payload", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	if reference == "" {
		msg := "webhook payload carries no reference"
		PrepareError(w, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest))
		return
	}

	// The webhook carries no caller identity: the reconciler credits the
	// transaction's own user or nobody.
	_, err = wh.depositService.ConfirmDeposit(ctx, nil, gateway, reference)
	if err != nil {
		if isClientError(err) {
			// Nothing a vendor retry can fix.
			logger.Log.Warn("webhook dropped",
				zap.String("gateway", gateway),
				zap.String("reference", reference),
				zap.Error(err))
			w.WriteHeader(http.StatusOK)
			return
		}
		PrepareError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (wh *WebhooksHandler) verifySignature(gateway string, r *http.Request, body []byte) error {
	var secret, header string
	var newHash func() hash.Hash
	switch gateway {
	case clients.GatewayPaystack:
		secret, header, newHash = wh.paystackSecretKey, "x-paystack-signature", sha512.New
	case clients.GatewayKorapay:
		secret, header, newHash = wh.korapaySecretKey, "x-korapay-signature", sha256.New
	default:
		// moolre/hubtel push plain notifications; server-side re-verification
		// is the only trust anchor there.
		return nil
	}

	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	provided := r.Header.Get(header)
	if !hmac.Equal([]byte(expected), []byte(provided)) {
		msg := "invalid webhook signature"
		return appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnauthorized)
	}
	return nil
}

func extractReference(gateway string, body []byte) (string, error) {
	switch gateway {
	case clients.GatewayPaystack, clients.GatewayKorapay:
		event := WebhookEventDto{}
		if err := event.UnmarshalJSON(body); err != nil {
			return "", err
		}
		return event.Data.Reference, nil
	default:
		flat := FlatWebhookDto{}
		if err := flat.UnmarshalJSON(body); err != nil {
			return "", err
		}
		return flat.Reference, nil
	}
}

func isClientError(err error) bool {
	var codeErr appErrors.ResponseCodeError
	return errors.As(err, &codeErr) && codeErr.Code() >= 400 && codeErr.Code() < 500
}
