package repository

import (
	"context"

	"tontine-service/src/internal/entity"
	"tontine-service/src/pkg/databases/postgres"
)

type TontineRepository struct {
	DB postgres.DBInterface
}

func NewTontineRepository(db postgres.DBInterface) *TontineRepository {
	return &TontineRepository{
		DB: db,
	}
}

func (r *TontineRepository) FindActive(ctx context.Context) ([]entity.Tontine, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tontines []entity.Tontine
	query := `
		SELECT id, name, admin_id, frequency, amount_to_pay, commission_rate, status, created_at
		FROM tontines
		WHERE status = $1
	`
	if err = db.SelectContext(ctx, &tontines, query, entity.TontineStatusActive); err != nil {
		return nil, err
	}

	return tontines, nil
}

func (r *TontineRepository) Create(ctx context.Context, tontine *entity.Tontine) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tontines (name, admin_id, frequency, amount_to_pay, commission_rate, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = db.ExecContext(ctx, query,
		tontine.Name, tontine.AdminID, tontine.Frequency,
		tontine.AmountToPay, tontine.CommissionRate, tontine.Status,
	)
	return err
}
