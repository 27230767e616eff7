package http

import (
	"tontine-service/src/internal/usecase"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SocialController struct {
	Log     log.Log
	UseCase *usecase.SocialUseCase
}

func NewSocialController(useCase *usecase.SocialUseCase, logger log.Log) *SocialController {
	return &SocialController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SocialController) GetFund(ctx *fiber.Ctx) error {
	result := c.UseCase.GetFund(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *SocialController) ListEvents(ctx *fiber.Ctx) error {
	result := c.UseCase.ListEvents(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, fiber.StatusOK, ctx)
}
