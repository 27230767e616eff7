package converter

import (
	"tontine-service/src/internal/entity"
	"tontine-service/src/internal/model"
)

func TontineToResponse(tontine *entity.Tontine) *model.TontineResponse {
	return &model.TontineResponse{
		ID:             tontine.ID,
		Name:           tontine.Name,
		AdminID:        tontine.AdminID,
		Frequency:      tontine.Frequency,
		AmountToPay:    tontine.AmountToPay,
		CommissionRate: tontine.CommissionRate,
		Status:         tontine.Status,
		CreatedAt:      tontine.CreatedAt,
	}
}

func TontinesToResponse(tontines []entity.Tontine) []model.TontineResponse {
	responses := make([]model.TontineResponse, 0, len(tontines))
	for i := range tontines {
		responses = append(responses, *TontineToResponse(&tontines[i]))
	}
	return responses
}
