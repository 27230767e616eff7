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

type UserController struct {
	Log     log.Log
	UseCase *usecase.UserUseCase
}

func NewUserController(useCase *usecase.UserUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *UserController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusCreated, ctx)
}

func (c *UserController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *UserController) GetBalance(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid user id"
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.GetBalance(ctx.Context(), &model.GetBalanceRequest{UserID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *UserController) GetTransactions(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid user id"
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.GetTransactions(ctx.Context(), &model.GetTransactionsRequest{UserID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}
