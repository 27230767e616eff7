package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"tontine-service/src/internal/entity"
	"tontine-service/src/internal/model"
	httpError "tontine-service/src/pkg/http-error"
	"tontine-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	createFunc      func(ctx context.Context, user *entity.User) (int64, error)
	findByPhoneFunc func(ctx context.Context, phone string) (*entity.User, error)
	balanceFunc     func(ctx context.Context, userID int64) (float64, error)
	created         []*entity.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *entity.User) (int64, error) {
	f.created = append(f.created, user)
	if f.createFunc != nil {
		return f.createFunc(ctx, user)
	}
	return 1, nil
}

func (f *fakeUserStore) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	if f.findByPhoneFunc != nil {
		return f.findByPhoneFunc(ctx, phone)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) Balance(ctx context.Context, userID int64) (float64, error) {
	if f.balanceFunc != nil {
		return f.balanceFunc(ctx, userID)
	}
	return 0, sql.ErrNoRows
}

type fakeLedgerStore struct {
	findFunc func(ctx context.Context, userID int64) ([]entity.Transaction, error)
}

func (f *fakeLedgerStore) FindByUser(ctx context.Context, userID int64) ([]entity.Transaction, error) {
	if f.findFunc != nil {
		return f.findFunc(ctx, userID)
	}
	return nil, nil
}

func newUserUseCase(store UserStore) *UserUseCase {
	return NewUserUseCase(log.Log{}, validator.New(), store, &fakeLedgerStore{})
}

func TestRegisterHashesPincode(t *testing.T) {
	store := &fakeUserStore{}
	uc := newUserUseCase(store)

	result := uc.Register(context.Background(), &model.RegisterUserRequest{
		Fullname: "A",
		Phone:    "650000000",
		Pincode:  "1234",
	})

	require.Nil(t, result.Error)
	assert.Equal(t, model.RegisterUserResponse{ID: 1}, result.Data)

	require.Len(t, store.created, 1)
	stored := store.created[0]
	assert.NotEqual(t, "1234", stored.PincodeHash, "pincode must not be stored raw")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PincodeHash), []byte("1234")))
}

func TestRegisterValidation(t *testing.T) {
	store := &fakeUserStore{}
	uc := newUserUseCase(store)

	result := uc.Register(context.Background(), &model.RegisterUserRequest{
		Fullname: "A",
		Phone:    "650000000",
	})

	require.NotNil(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusBadRequest, errObj.Code)
	assert.Empty(t, store.created)
}

func TestLoginSuccessOmitsHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := &fakeUserStore{
		findByPhoneFunc: func(ctx context.Context, phone string) (*entity.User, error) {
			return &entity.User{ID: 5, Fullname: "A", Phone: phone, PincodeHash: string(hash), Balance: 100}, nil
		},
	}
	uc := newUserUseCase(store)

	result := uc.Login(context.Background(), &model.LoginUserRequest{Phone: "650000000", Pincode: "1234"})

	require.Nil(t, result.Error)
	response, ok := result.Data.(*model.UserResponse)
	require.True(t, ok)
	assert.Equal(t, int64(5), response.ID)
	assert.Equal(t, 100.0, response.Balance)
}

func TestLoginWrongPincode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := &fakeUserStore{
		findByPhoneFunc: func(ctx context.Context, phone string) (*entity.User, error) {
			return &entity.User{ID: 5, Phone: phone, PincodeHash: string(hash)}, nil
		},
	}
	uc := newUserUseCase(store)

	result := uc.Login(context.Background(), &model.LoginUserRequest{Phone: "650000000", Pincode: "9999"})

	require.NotNil(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusUnauthorized, errObj.Code)
	assert.Nil(t, result.Data, "no user data on failed login")
}

func TestLoginUnknownPhone(t *testing.T) {
	uc := newUserUseCase(&fakeUserStore{})

	result := uc.Login(context.Background(), &model.LoginUserRequest{Phone: "699999999", Pincode: "1234"})

	require.NotNil(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusUnauthorized, errObj.Code)
}

func TestLoginStorageFailure(t *testing.T) {
	store := &fakeUserStore{
		findByPhoneFunc: func(ctx context.Context, phone string) (*entity.User, error) {
			return nil, errors.New("pq: connection refused")
		},
	}
	uc := newUserUseCase(store)

	result := uc.Login(context.Background(), &model.LoginUserRequest{Phone: "650000000", Pincode: "1234"})

	require.NotNil(t, result.Error)
	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, fiber.StatusInternalServerError, errObj.Code, "storage failure must not read as bad credentials")
	assert.NotContains(t, errObj.Message, "connection refused", "internal detail stays out of the response")
}

func TestGetBalanceUnknownUserIsZero(t *testing.T) {
	uc := newUserUseCase(&fakeUserStore{})

	result := uc.GetBalance(context.Background(), &model.GetBalanceRequest{UserID: 404})

	require.Nil(t, result.Error)
	assert.Equal(t, model.BalanceResponse{Balance: 0}, result.Data)
}

func TestGetBalance(t *testing.T) {
	store := &fakeUserStore{
		balanceFunc: func(ctx context.Context, userID int64) (float64, error) {
			return 500, nil
		},
	}
	uc := newUserUseCase(store)

	result := uc.GetBalance(context.Background(), &model.GetBalanceRequest{UserID: 42})

	require.Nil(t, result.Error)
	assert.Equal(t, model.BalanceResponse{Balance: 500}, result.Data)
}

func TestGetTransactions(t *testing.T) {
	ledger := &fakeLedgerStore{
		findFunc: func(ctx context.Context, userID int64) ([]entity.Transaction, error) {
			return []entity.Transaction{
				{ID: 2, UserID: userID, Amount: 500, Type: entity.TransactionTypeDeposit, Status: entity.TransactionStatusCompleted},
				{ID: 1, UserID: userID, Amount: 250, Type: entity.TransactionTypeDeposit, Status: entity.TransactionStatusCompleted},
			}, nil
		},
	}
	uc := NewUserUseCase(log.Log{}, validator.New(), &fakeUserStore{}, ledger)

	result := uc.GetTransactions(context.Background(), &model.GetTransactionsRequest{UserID: 42})

	require.Nil(t, result.Error)
	transactions, ok := result.Data.([]entity.Transaction)
	require.True(t, ok)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(2), transactions[0].ID, "newest first, ordering comes from the repository")
}

func TestGetTransactionsEmpty(t *testing.T) {
	uc := newUserUseCase(&fakeUserStore{})

	result := uc.GetTransactions(context.Background(), &model.GetTransactionsRequest{UserID: 42})

	require.Nil(t, result.Error)
	transactions, ok := result.Data.([]entity.Transaction)
	require.True(t, ok)
	assert.Empty(t, transactions)
}
