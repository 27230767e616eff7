package monetbil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tontine-service/src/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacePaymentRequestShape(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment/v1/placePayment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"REQUEST_ACCEPTED","paymentId":"abc123"}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		ServiceKey: "test-service-key",
		BaseURL:    server.URL,
		NotifyURL:  "https://example.org/api/payments/webhook",
	}, log.Log{})

	response, err := client.PlacePayment(context.Background(), PlacePaymentRequest{
		Phone:    "650000000",
		Amount:   500,
		Operator: "CM_MTNMOBILEMONEY",
		ItemRef:  EncodeItemRef(7),
	})
	require.NoError(t, err)

	assert.Equal(t, "REQUEST_ACCEPTED", response["status"])
	assert.Equal(t, "abc123", response["paymentId"])

	assert.Equal(t, "test-service-key", received["service"])
	assert.Equal(t, "XAF", received["currency"])
	assert.Equal(t, "237650000000", received["phonenumber"])
	assert.Equal(t, "USER_7", received["item_ref"])
	assert.Equal(t, "https://example.org/api/payments/webhook", received["notify_url"])
	assert.Equal(t, 500.0, received["amount"])
}

func TestPlacePaymentProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"message":"insufficient funds"}`))
	}))
	defer server.Close()

	client := NewClient(Config{ServiceKey: "k", BaseURL: server.URL}, log.Log{})

	_, err := client.PlacePayment(context.Background(), PlacePaymentRequest{
		Phone:   "650000000",
		Amount:  500,
		ItemRef: EncodeItemRef(7),
	})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "insufficient funds", apiErr.Message)
}

func TestPlacePaymentNetworkError(t *testing.T) {
	client := NewClient(Config{ServiceKey: "k", BaseURL: "http://127.0.0.1:1"}, log.Log{})

	_, err := client.PlacePayment(context.Background(), PlacePaymentRequest{
		Phone:   "650000000",
		Amount:  500,
		ItemRef: EncodeItemRef(7),
	})
	require.Error(t, err)
	assert.NotErrorAs(t, err, new(*APIError))
}
