package clients

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adergachev/smmstore/internal/app/config"
	"github.com/adergachev/smmstore/internal/app/logger"
	"github.com/sethgrid/pester"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type (
	// FulfillmentClient talks to the SMM provider's form-encoded API. Both
	// calls are paced by a shared rate limiter so the status poller cannot
	// starve order placement.
	FulfillmentClient interface {
		PlaceOrder(serviceID int64, link string, quantity int64) (string, error)
		GetOrderStatus(externalID string) (*FulfillmentStatusDto, error)
	}
	FulfillmentClientImpl struct {
		ServiceURL   string
		apiKey       string
		pesterClient *pester.Client
		rateLimiter  ratelimit.Limiter
	}
	//easyjson:json
	FulfillmentAddDto struct {
		OrderID int64  `json:"order"`
		Error   string `json:"error"`
	}
	//easyjson:json
	FulfillmentStatusDto struct {
		Status  string `json:"status"`
		Charge  string `json:"charge"`
		Remains string `json:"remains"`
		Error   string `json:"error"`
	}
	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

func NewFulfillmentClient(c config.AppConfig) *FulfillmentClientImpl {
	ratePerSecond := c.FulfillmentMaxReqPerMinute / 60
	if ratePerSecond < 1 {
		ratePerSecond = 1
	}

	rateLimiter := ratelimit.New(ratePerSecond)
	pesterClient := pester.New()

	pesterClient.Concurrency = 1 // Since we are rate-limiting, concurrency should be 1
	pesterClient.MaxRetries = 3
	pesterClient.Backoff = pester.LinearBackoff
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.FulfillmentTimeoutSec) * time.Second
	pesterClient.RetryOnHTTP429 = false
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &FulfillmentClientImpl{
		ServiceURL:   c.FulfillmentURL,
		apiKey:       c.FulfillmentAPIKey,
		pesterClient: pesterClient,
		rateLimiter:  rateLimiter,
	}
}

func (fc *FulfillmentClientImpl) PlaceOrder(serviceID int64, link string, quantity int64) (string, error) {
	fc.rateLimiter.Take()

	form := url.Values{}
	form.Set("key", fc.apiKey)
	form.Set("action", "add")
	form.Set("service", strconv.FormatInt(serviceID, 10))
	form.Set("link", link)
	form.Set("quantity", strconv.FormatInt(quantity, 10))

	body, err := fc.postForm(form)
	if err != nil {
		return "", err
	}

	dto := &FulfillmentAddDto{}
	if err = dto.UnmarshalJSON(body); err != nil {
		return "", fmt.Errorf("error unmarshalling response to DTO: %w", err)
	}
	if dto.Error != "" {
		return "", fmt.Errorf("fulfillment provider refused order: %s", dto.Error)
	}
	if dto.OrderID == 0 {
		return "", fmt.Errorf("fulfillment provider returned no order id")
	}
	return strconv.FormatInt(dto.OrderID, 10), nil
}

func (fc *FulfillmentClientImpl) GetOrderStatus(externalID string) (*FulfillmentStatusDto, error) {
	fc.rateLimiter.Take()

	form := url.Values{}
	form.Set("key", fc.apiKey)
	form.Set("action", "status")
	form.Set("order", externalID)

	body, err := fc.postForm(form)
	if err != nil {
		return nil, err
	}

	dto := &FulfillmentStatusDto{}
	if err = dto.UnmarshalJSON(body); err != nil {
		return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
	}
	if dto.Error != "" {
		return nil, fmt.Errorf("fulfillment status error: %s", dto.Error)
	}
	return dto, nil
}

func (fc *FulfillmentClientImpl) postForm(form url.Values) ([]byte, error) {
	resp, err := fc.pesterClient.PostForm(fc.ServiceURL, form)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fulfillment provider responded with status %d", resp.StatusCode)
	}
	return body, nil
}

func (lrt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	logRequest(r)
	response, err := lrt.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Error("outbound request error", zap.Error(err))
		return nil, err
	}
	logResponse(response)
	return response, nil
}

func logResponse(response *http.Response) {
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("outbound response error", zap.Error(err))
		return
	}
	response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	body := string(bodyBytes)
	if len(body) == 0 {
		body = "empty body"
	}

	logger.Log.Debug("OUTBOUND RESPONSE:",
		zap.Int("Status", response.StatusCode),
		zap.Int64("Content-Length", response.ContentLength),
		zap.String("Body", body),
	)
}

func logRequest(r *http.Request) {
	bodyMsg, err := getRequestBodyForLogging(r)
	if err != nil {
		logger.Log.Error("outbound log request error", zap.Error(err))
		return
	}
	logger.Log.Debug("OUTBOUND REQUEST:",
		zap.String("Method", r.Method),
		zap.String("Path", r.URL.String()),
		zap.String("Body", bodyMsg),
	)
}

func getRequestBodyForLogging(r *http.Request) (string, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return "empty body", nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("error reading request body: %w", err)
	}
	defer r.Body.Close()
	r.Body = io.NopCloser(bytes.NewBuffer(body))
	return string(body), nil
}
