package http

import (
	"strconv"

	"tontine-service/src/internal/model"
	"tontine-service/src/internal/usecase"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TontineController struct {
	Log     log.Log
	UseCase *usecase.TontineUseCase
}

func NewTontineController(useCase *usecase.TontineUseCase, logger log.Log) *TontineController {
	return &TontineController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TontineController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *TontineController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateTontineRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TontineController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return ctx.SendStatus(fiber.StatusCreated)
}

func (c *TontineController) ListAuctions(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid tontine id"
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.ListAuctions(ctx.Context(), &model.ListAuctionsRequest{TontineID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}
