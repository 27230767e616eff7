package usecase

import (
	"context"
	"fmt"

	"tontine-service/src/internal/entity"
	"tontine-service/src/internal/model"
	"tontine-service/src/internal/model/converter"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type TontineStore interface {
	FindActive(ctx context.Context) ([]entity.Tontine, error)
	Create(ctx context.Context, tontine *entity.Tontine) error
}

type AuctionStore interface {
	FindByTontine(ctx context.Context, tontineID int64) ([]entity.Auction, error)
}

type TontineUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	TontineRepository TontineStore
	AuctionRepository AuctionStore
}

func NewTontineUseCase(
	logger log.Log,
	validate *validator.Validate,
	tontineRepository TontineStore,
	auctionRepository AuctionStore,
) *TontineUseCase {
	return &TontineUseCase{
		Log:               logger,
		Validate:          validate,
		TontineRepository: tontineRepository,
		AuctionRepository: auctionRepository,
	}
}

func (c *TontineUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	tontines, err := c.TontineRepository.FindActive(ctx)
	if err != nil {
		c.Log.Error("TontineUseCase.List", err.Error(), "repository", "")
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list tontines"
		result.Error = errObj
		return result
	}

	result.Data = converter.TontinesToResponse(tontines)
	return result
}

func (c *TontineUseCase) Create(ctx context.Context, request *model.CreateTontineRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tontine := &entity.Tontine{
		Name:           request.Name,
		AdminID:        request.AdminID,
		Frequency:      request.Frequency,
		AmountToPay:    request.Amount,
		CommissionRate: request.CommissionRate,
		Status:         entity.TontineStatusActive,
	}

	if err := c.TontineRepository.Create(ctx, tontine); err != nil {
		c.Log.Error("TontineUseCase.Create", err.Error(), "request", utils.ConvertString(request))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create tontine"
		result.Error = errObj
		return result
	}

	c.Log.Info("TontineUseCase.Create", "tontine created", "name", request.Name)
	return result
}

func (c *TontineUseCase) ListAuctions(ctx context.Context, request *model.ListAuctionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	auctions, err := c.AuctionRepository.FindByTontine(ctx, request.TontineID)
	if err != nil {
		c.Log.Error("TontineUseCase.ListAuctions", err.Error(), "tontineID", fmt.Sprintf("%d", request.TontineID))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list auctions"
		result.Error = errObj
		return result
	}

	if auctions == nil {
		auctions = []entity.Auction{}
	}
	result.Data = auctions
	return result
}
