package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tontine-service/src/internal/gateway/monetbil"
	"tontine-service/src/internal/model"
	"tontine-service/src/internal/repository"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PaymentGateway interface {
	PlacePayment(ctx context.Context, request monetbil.PlacePaymentRequest) (monetbil.PlacePaymentResponse, error)
}

type DepositStore interface {
	ApplyDeposit(ctx context.Context, userID int64, amount float64, providerRef string) error
}

type DepositPublisher interface {
	SendDepositCompleted(event *model.DepositCompletedEvent) error
}

type PaymentUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	Gateway               PaymentGateway
	TransactionRepository DepositStore
	DepositProducer       DepositPublisher
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	gateway PaymentGateway,
	transactionRepository DepositStore,
	depositProducer DepositPublisher,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:                   logger,
		Validate:              validate,
		Gateway:               gateway,
		TransactionRepository: transactionRepository,
		DepositProducer:       depositProducer,
	}
}

// Initiate forwards a collect-payment request to the provider and passes its
// response through. The store is untouched: only the later webhook moves money.
func (c *PaymentUseCase) Initiate(ctx context.Context, request *model.InitiatePaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("PaymentUseCase.Initiate-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	response, err := c.Gateway.PlacePayment(ctx, monetbil.PlacePaymentRequest{
		Phone:    request.Phone,
		Amount:   request.Amount,
		Operator: request.Operator,
		ItemRef:  monetbil.EncodeItemRef(request.UserID),
	})
	if err != nil {
		c.Log.Error("PaymentUseCase.Initiate", err.Error(), "userID", fmt.Sprintf("%d", request.UserID))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "payment initiation failed"
		var apiErr *monetbil.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			errObj.Message = fmt.Sprintf("payment initiation failed: %s", apiErr.Message)
		}
		result.Error = errObj
		return result
	}

	result.Data = response
	return result
}

// HandleWebhook reconciles a provider notification. The outcome is reported
// in the result data but never as an error: the receiver acknowledges every
// notification so the provider does not keep retrying.
func (c *PaymentUseCase) HandleWebhook(ctx context.Context, request *model.WebhookRequest) utils.Result {
	var result utils.Result

	if request.Status != "success" {
		c.Log.Info("PaymentUseCase.HandleWebhook", "non-success notification ignored", "status", request.Status)
		result.Data = model.WebhookAck{Result: model.WebhookIgnored}
		return result
	}

	userID, err := monetbil.DecodeItemRef(request.ItemRef)
	if err != nil {
		c.Log.Error("PaymentUseCase.HandleWebhook-itemref", err.Error(), "item_ref", request.ItemRef)
		result.Data = model.WebhookAck{Result: model.WebhookIgnored}
		return result
	}

	if request.Amount <= 0 {
		c.Log.Error("PaymentUseCase.HandleWebhook-amount", "non-positive amount", "item_ref", request.ItemRef)
		result.Data = model.WebhookAck{Result: model.WebhookIgnored}
		return result
	}

	err = c.TransactionRepository.ApplyDeposit(ctx, userID, request.Amount, request.TransactionID)
	switch {
	case errors.Is(err, repository.ErrDuplicateDeposit):
		c.Log.Info("PaymentUseCase.HandleWebhook", "duplicate notification, deposit already applied", "provider_ref", request.TransactionID)
		result.Data = model.WebhookAck{Result: model.WebhookDuplicate}
		return result
	case errors.Is(err, repository.ErrUserNotFound):
		c.Log.Error("PaymentUseCase.HandleWebhook", "deposit for unknown user", "item_ref", request.ItemRef)
		result.Data = model.WebhookAck{Result: model.WebhookIgnored}
		return result
	case err != nil:
		c.Log.Error("PaymentUseCase.HandleWebhook", err.Error(), "item_ref", request.ItemRef)
		result.Data = model.WebhookAck{Result: model.WebhookIgnored}
		return result
	}

	c.Log.Info("PaymentUseCase.HandleWebhook", fmt.Sprintf("deposit of %.2f applied", request.Amount), "userID", fmt.Sprintf("%d", userID))

	if c.DepositProducer != nil {
		event := &model.DepositCompletedEvent{
			EventID:     uuid.NewString(),
			UserID:      userID,
			Amount:      request.Amount,
			Method:      "mobile_money",
			ProviderRef: request.TransactionID,
			OccurredAt:  time.Now().UTC(),
		}
		if err := c.DepositProducer.SendDepositCompleted(event); err != nil {
			// notification is best effort, the deposit is already committed
			c.Log.Error("PaymentUseCase.HandleWebhook-publish", err.Error(), "userID", fmt.Sprintf("%d", userID))
		}
	}

	result.Data = model.WebhookAck{Result: model.WebhookApplied}
	return result
}
