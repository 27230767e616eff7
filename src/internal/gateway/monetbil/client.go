package monetbil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tontine-service/src/pkg/log"
)

const (
	DefaultBaseURL   = "https://api.monetbil.com"
	placePaymentPath = "/payment/v1/placePayment"
	currencyXAF      = "XAF"
)

type Config struct {
	ServiceKey string
	BaseURL    string
	NotifyURL  string
}

// Client issues collect-payment requests against the Monetbil API. The
// service key is injected from configuration, never embedded in source.
type Client struct {
	serviceKey string
	baseURL    string
	notifyURL  string
	httpClient *http.Client
	log        log.Log
}

func NewClient(cfg Config, logger log.Log) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		serviceKey: cfg.ServiceKey,
		baseURL:    baseURL,
		notifyURL:  cfg.NotifyURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger,
	}
}

type PlacePaymentRequest struct {
	Phone    string
	Amount   float64
	Operator string
	ItemRef  string
}

// PlacePaymentResponse is the provider's body, passed through untouched.
type PlacePaymentResponse map[string]interface{}

// APIError carries the provider's own failure message when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("monetbil: %s (%d)", e.Message, e.StatusCode)
}

func (c *Client) PlacePayment(ctx context.Context, request PlacePaymentRequest) (PlacePaymentResponse, error) {
	payload := map[string]interface{}{
		"service":     c.serviceKey,
		"amount":      request.Amount,
		"currency":    currencyXAF,
		"phonenumber": NormalizePhone(request.Phone),
		"operator":    request.Operator,
		"item_ref":    request.ItemRef,
		"description": "Tontine deposit",
		"notify_url":  c.notifyURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+placePaymentPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("monetbil", err.Error(), "PlacePayment", request.ItemRef)
		return nil, fmt.Errorf("monetbil placePayment: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.log.Error("monetbil", err.Error(), "PlacePayment", request.ItemRef)
		return nil, fmt.Errorf("monetbil read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: res.StatusCode, Message: extractMessage(raw)}
		c.log.Error("monetbil", apiErr.Error(), "PlacePayment", request.ItemRef)
		return nil, apiErr
	}

	var response PlacePaymentResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("monetbil parse response: %w", err)
	}
	return response, nil
}

func extractMessage(raw []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err == nil {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := body["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return string(raw)
}
