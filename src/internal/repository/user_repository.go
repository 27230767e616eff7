package repository

import (
	"context"

	"tontine-service/src/internal/entity"
	"tontine-service/src/pkg/databases/postgres"
)

type UserRepository struct {
	DB postgres.DBInterface
}

func NewUserRepository(db postgres.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var id int64
	query := `
		INSERT INTO users (fullname, phone, pincode_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err = db.GetContext(ctx, &id, query, user.Fullname, user.Phone, user.PincodeHash); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `
		SELECT id, fullname, phone, pincode_hash, balance, created_at
		FROM users
		WHERE phone = $1
	`
	if err = db.GetContext(ctx, &user, query, phone); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Balance(ctx context.Context, userID int64) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var balance float64
	query := `SELECT balance FROM users WHERE id = $1`
	if err = db.GetContext(ctx, &balance, query, userID); err != nil {
		return 0, err
	}

	return balance, nil
}
