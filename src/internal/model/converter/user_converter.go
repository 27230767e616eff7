package converter

import (
	"tontine-service/src/internal/entity"
	"tontine-service/src/internal/model"
)

// UserToResponse maps a stored user to its API shape. The pincode hash never
// leaves the service.
func UserToResponse(user *entity.User) *model.UserResponse {
	return &model.UserResponse{
		ID:        user.ID,
		Fullname:  user.Fullname,
		Phone:     user.Phone,
		Balance:   user.Balance,
		CreatedAt: user.CreatedAt,
	}
}
