package repository

import (
	"context"

	"tontine-service/src/internal/entity"
	"tontine-service/src/pkg/databases/postgres"
)

type SocialRepository struct {
	DB postgres.DBInterface
}

func NewSocialRepository(db postgres.DBInterface) *SocialRepository {
	return &SocialRepository{
		DB: db,
	}
}

func (r *SocialRepository) FundTotal(ctx context.Context) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM social_events`
	if err = db.GetContext(ctx, &total, query); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *SocialRepository) FindEvents(ctx context.Context) ([]entity.SocialEvent, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var events []entity.SocialEvent
	query := `
		SELECT id, title, amount, created_at
		FROM social_events
		ORDER BY created_at DESC
	`
	if err = db.SelectContext(ctx, &events, query); err != nil {
		return nil, err
	}

	return events, nil
}
