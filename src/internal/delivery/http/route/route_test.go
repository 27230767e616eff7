package route

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliveryHttp "tontine-service/src/internal/delivery/http"
	"tontine-service/src/internal/gateway/monetbil"
	"tontine-service/src/internal/usecase"
	"tontine-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDepositStore struct {
	calls int
}

func (r *recordingDepositStore) ApplyDeposit(ctx context.Context, userID int64, amount float64, providerRef string) error {
	r.calls++
	return nil
}

type noopGateway struct{}

func (noopGateway) PlacePayment(ctx context.Context, request monetbil.PlacePaymentRequest) (monetbil.PlacePaymentResponse, error) {
	return monetbil.PlacePaymentResponse{}, nil
}

func newTestApp(store usecase.DepositStore) *fiber.App {
	app := fiber.New()
	paymentUseCase := usecase.NewPaymentUseCase(log.Log{}, validator.New(), noopGateway{}, store, nil)
	config := RouteConfig{
		App:               app,
		UserController:    nil,
		TontineController: nil,
		PaymentController: deliveryHttp.NewPaymentController(paymentUseCase, log.Log{}),
		SocialController:  nil,
	}
	config.Setup()
	return app
}

func TestLivenessRoute(t *testing.T) {
	app := newTestApp(&recordingDepositStore{})

	res, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.NotEmpty(t, body)
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(&recordingDepositStore{})

	res, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestWebhookAlwaysAcks(t *testing.T) {
	store := &recordingDepositStore{}
	app := newTestApp(store)

	for _, payload := range []string{
		`{"status":"success","amount":500,"item_ref":"USER_1","transaction_id":"mb-1"}`,
		`{"status":"failed","amount":500,"item_ref":"USER_1"}`,
		`{"status":"success","amount":500,"item_ref":"garbage"}`,
		`not even json`,
	} {
		req := httptest.NewRequest(nethttp.MethodPost, "/api/payments/webhook", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, res.StatusCode, "payload %q", payload)
	}

	assert.Equal(t, 1, store.calls, "only the valid success notification mutates the store")
}
