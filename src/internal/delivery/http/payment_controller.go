package http

import (
	"tontine-service/src/internal/model"
	"tontine-service/src/internal/usecase"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) Initiate(ctx *fiber.Ctx) error {
	request := new(model.InitiatePaymentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.Initiate", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Initiate(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

// Webhook acknowledges every notification with 200. The reconciliation
// outcome only shows up in the logs, never in the response.
func (c *PaymentController) Webhook(ctx *fiber.Ctx) error {
	request := new(model.WebhookRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.Webhook", "Failed to parse webhook body", "error", err.Error())
		return ctx.SendStatus(fiber.StatusOK)
	}

	c.UseCase.HandleWebhook(ctx.Context(), request)
	return ctx.SendStatus(fiber.StatusOK)
}
