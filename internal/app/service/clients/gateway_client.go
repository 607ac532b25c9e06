package clients

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adergachev/smmstore/internal/app/config"
	"github.com/sethgrid/pester"
)

// Gateway names as they appear in routes and transaction deposit_method.
const (
	GatewayPaystack = "paystack"
	GatewayKorapay  = "korapay"
	GatewayMoolre   = "moolre"
	GatewayHubtel   = "hubtel"
)

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
	PaymentPending PaymentStatus = "pending"
)

type (
	// VerificationResult is the gateway-independent view of a server-side
	// payment verification.
	VerificationResult struct {
		Reference string
		Status    PaymentStatus
		Amount    float64
	}
	// GatewayClient re-verifies payments against the vendors' server APIs.
	// CheckStatus is the raw passthrough used by the status proxy endpoint.
	GatewayClient interface {
		VerifyPayment(gateway, reference string) (*VerificationResult, error)
		CheckStatus(gateway, reference string) (int, []byte, error)
	}
	GatewayClientImpl struct {
		cfg          config.AppConfig
		pesterClient *pester.Client
	}

	//easyjson:json
	PaystackVerifyDto struct {
		Status  bool                  `json:"status"`
		Message string                `json:"message"`
		Data    PaystackVerifyDataDto `json:"data"`
	}
	//easyjson:json
	PaystackVerifyDataDto struct {
		Reference string  `json:"reference"`
		Status    string  `json:"status"`
		Amount    float64 `json:"amount"` // subunits
	}
	//easyjson:json
	KorapayVerifyDto struct {
		Status  bool                 `json:"status"`
		Message string               `json:"message"`
		Data    KorapayVerifyDataDto `json:"data"`
	}
	//easyjson:json
	KorapayVerifyDataDto struct {
		Reference string  `json:"reference"`
		Status    string  `json:"status"`
		Amount    float64 `json:"amount"`
	}
	//easyjson:json
	MoolreVerifyDto struct {
		Status int                 `json:"status"`
		Code   string              `json:"code"`
		Data   MoolreVerifyDataDto `json:"data"`
	}
	//easyjson:json
	MoolreVerifyDataDto struct {
		Reference string  `json:"externalref"`
		TxStatus  int     `json:"txstatus"`
		Amount    float64 `json:"amount"`
	}
	//easyjson:json
	HubtelVerifyDto struct {
		Message string              `json:"message"`
		Data    HubtelVerifyDataDto `json:"data"`
	}
	//easyjson:json
	HubtelVerifyDataDto struct {
		Reference string  `json:"clientReference"`
		Status    string  `json:"status"`
		Amount    float64 `json:"amount"`
	}
)

func NewGatewayClient(c config.AppConfig) *GatewayClientImpl {
	pesterClient := pester.New()
	pesterClient.Concurrency = 1
	pesterClient.MaxRetries = 3
	pesterClient.Backoff = pester.LinearBackoff
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.GatewayTimeoutSec) * time.Second
	pesterClient.RetryOnHTTP429 = false
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &GatewayClientImpl{
		cfg:          c,
		pesterClient: pesterClient,
	}
}

func (gc *GatewayClientImpl) VerifyPayment(gateway, reference string) (*VerificationResult, error) {
	status, body, err := gc.CheckStatus(gateway, reference)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("gateway %s responded with status %d", gateway, status)
	}

	switch gateway {
	case GatewayPaystack:
		dto := &PaystackVerifyDto{}
		if err = dto.UnmarshalJSON(body); err != nil {
			return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
		}
		return &VerificationResult{
			Reference: dto.Data.Reference,
			Status:    mapVendorStatus(dto.Data.Status),
			Amount:    dto.Data.Amount / 100, // paystack reports subunits
		}, nil
	case GatewayKorapay:
		dto := &KorapayVerifyDto{}
		if err = dto.UnmarshalJSON(body); err != nil {
			return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
		}
		return &VerificationResult{
			Reference: dto.Data.Reference,
			Status:    mapVendorStatus(dto.Data.Status),
			Amount:    dto.Data.Amount,
		}, nil
	case GatewayMoolre:
		dto := &MoolreVerifyDto{}
		if err = dto.UnmarshalJSON(body); err != nil {
			return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
		}
		result := &VerificationResult{Reference: dto.Data.Reference, Amount: dto.Data.Amount}
		switch dto.Data.TxStatus {
		case 1:
			result.Status = PaymentSuccess
		case 0:
			result.Status = PaymentPending
		default:
			result.Status = PaymentFailed
		}
		return result, nil
	case GatewayHubtel:
		dto := &HubtelVerifyDto{}
		if err = dto.UnmarshalJSON(body); err != nil {
			return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
		}
		return &VerificationResult{
			Reference: dto.Data.Reference,
			Status:    mapVendorStatus(dto.Data.Status),
			Amount:    dto.Data.Amount,
		}, nil
	}
	return nil, fmt.Errorf("unknown gateway: %s", gateway)
}

func (gc *GatewayClientImpl) CheckStatus(gateway, reference string) (int, []byte, error) {
	req, err := gc.buildStatusRequest(gateway, reference)
	if err != nil {
		return 0, nil, err
	}

	resp, err := gc.pesterClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error making request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (gc *GatewayClientImpl) buildStatusRequest(gateway, reference string) (*http.Request, error) {
	switch gateway {
	case GatewayPaystack:
		req, err := http.NewRequest(http.MethodGet, gc.cfg.PaystackURL+"/transaction/verify/"+reference, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+gc.cfg.PaystackSecretKey)
		return req, nil
	case GatewayKorapay:
		req, err := http.NewRequest(http.MethodGet, gc.cfg.KorapayURL+"/merchant/api/v1/charges/"+reference, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+gc.cfg.KorapaySecretKey)
		return req, nil
	case GatewayMoolre:
		payload := fmt.Sprintf(`{"type":1,"idtype":1,"id":%q}`, reference)
		req, err := http.NewRequest(http.MethodPost, gc.cfg.MoolreURL+"/open/transaction/status", bytes.NewBufferString(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-USER", gc.cfg.MoolreAPIUser)
		req.Header.Set("X-API-PUBKEY", gc.cfg.MoolreAPIKey)
		return req, nil
	case GatewayHubtel:
		url := fmt.Sprintf("%s/transactions/%s/status?clientReference=%s", gc.cfg.HubtelURL, gc.cfg.HubtelMerchantID, reference)
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Basic "+gc.cfg.HubtelAPIKey)
		return req, nil
	}
	return nil, fmt.Errorf("unknown gateway: %s", gateway)
}

func mapVendorStatus(vendorStatus string) PaymentStatus {
	switch strings.ToLower(vendorStatus) {
	case "success", "paid", "completed":
		return PaymentSuccess
	case "pending", "processing", "ongoing":
		return PaymentPending
	}
	return PaymentFailed
}

// KnownGateway reports whether the name matches an integrated vendor.
func KnownGateway(gateway string) bool {
	switch gateway {
	case GatewayPaystack, GatewayKorapay, GatewayMoolre, GatewayHubtel:
		return true
	}
	return false
}
