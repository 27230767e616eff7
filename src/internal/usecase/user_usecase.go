package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tontine-service/src/internal/entity"
	"tontine-service/src/internal/model"
	"tontine-service/src/internal/model/converter"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"
	"tontine-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const pqUniqueViolation = "23505"

type UserStore interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	Balance(ctx context.Context, userID int64) (float64, error)
}

type LedgerStore interface {
	FindByUser(ctx context.Context, userID int64) ([]entity.Transaction, error)
}

type UserUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	UserRepository        UserStore
	TransactionRepository LedgerStore
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserStore,
	transactionRepository LedgerStore,
) *UserUseCase {
	return &UserUseCase{
		Log:                   logger,
		Validate:              validate,
		UserRepository:        userRepository,
		TransactionRepository: transactionRepository,
	}
}

func (c *UserUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("UserUseCase.Register-validation", err.Error(), "request", request.Phone)
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Pincode), bcrypt.DefaultCost)
	if err != nil {
		c.Log.Error("UserUseCase.Register-hash", err.Error(), "request", request.Phone)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	user := &entity.User{
		Fullname:    request.Fullname,
		Phone:       request.Phone,
		PincodeHash: string(hash),
	}

	id, err := c.UserRepository.Create(ctx, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			errObj := httpError.NewBadRequest()
			errObj.Message = "phone already registered"
			result.Error = errObj
			return result
		}
		c.Log.Error("UserUseCase.Register-create", err.Error(), "request", request.Phone)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create user"
		result.Error = errObj
		return result
	}

	c.Log.Info("UserUseCase.Register", "user created", "userID", fmt.Sprintf("%d", id))
	result.Data = model.RegisterUserResponse{ID: id}
	return result
}

func (c *UserUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.UserRepository.FindByPhone(ctx, request.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		// same response for unknown phone and wrong pincode
		c.Log.Info("UserUseCase.Login", "login failed: phone not found", "phone", request.Phone)
		errObj := httpError.NewUnauthorized()
		errObj.Message = "incorrect credentials"
		result.Error = errObj
		return result
	}
	if err != nil {
		c.Log.Error("UserUseCase.Login", err.Error(), "phone", request.Phone)
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to read user"
		result.Error = errObj
		return result
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PincodeHash), []byte(request.Pincode)) != nil {
		c.Log.Info("UserUseCase.Login", "login failed: pincode mismatch", "phone", request.Phone)
		errObj := httpError.NewUnauthorized()
		errObj.Message = "incorrect credentials"
		result.Error = errObj
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) GetBalance(ctx context.Context, request *model.GetBalanceRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	balance, err := c.UserRepository.Balance(ctx, request.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		// unknown user reads as zero, matching the API contract
		result.Data = model.BalanceResponse{Balance: 0}
		return result
	}
	if err != nil {
		c.Log.Error("UserUseCase.GetBalance", err.Error(), "userID", fmt.Sprintf("%d", request.UserID))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to read balance"
		result.Error = errObj
		return result
	}

	result.Data = model.BalanceResponse{Balance: balance}
	return result
}

func (c *UserUseCase) GetTransactions(ctx context.Context, request *model.GetTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	transactions, err := c.TransactionRepository.FindByUser(ctx, request.UserID)
	if err != nil {
		c.Log.Error("UserUseCase.GetTransactions", err.Error(), "userID", fmt.Sprintf("%d", request.UserID))
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list transactions"
		result.Error = errObj
		return result
	}

	if transactions == nil {
		transactions = []entity.Transaction{}
	}
	result.Data = transactions
	return result
}
