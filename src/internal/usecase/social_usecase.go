package usecase

import (
	"context"

	"tontine-service/src/internal/entity"
	"tontine-service/src/internal/model"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"
)

type SocialStore interface {
	FundTotal(ctx context.Context) (float64, error)
	FindEvents(ctx context.Context) ([]entity.SocialEvent, error)
}

type SocialUseCase struct {
	Log              log.Log
	SocialRepository SocialStore
}

func NewSocialUseCase(logger log.Log, socialRepository SocialStore) *SocialUseCase {
	return &SocialUseCase{
		Log:              logger,
		SocialRepository: socialRepository,
	}
}

func (c *SocialUseCase) GetFund(ctx context.Context) utils.Result {
	var result utils.Result

	total, err := c.SocialRepository.FundTotal(ctx)
	if err != nil {
		c.Log.Error("SocialUseCase.GetFund", err.Error(), "repository", "")
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to read social fund"
		result.Error = errObj
		return result
	}

	result.Data = model.SocialFundResponse{Total: total}
	return result
}

func (c *SocialUseCase) ListEvents(ctx context.Context) utils.Result {
	var result utils.Result

	events, err := c.SocialRepository.FindEvents(ctx)
	if err != nil {
		c.Log.Error("SocialUseCase.ListEvents", err.Error(), "repository", "")
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list social events"
		result.Error = errObj
		return result
	}

	if events == nil {
		events = []entity.SocialEvent{}
	}
	result.Data = events
	return result
}
