package repository

import (
	"context"

	"tontine-service/src/internal/entity"
	"tontine-service/src/pkg/databases/postgres"
)

type AuctionRepository struct {
	DB postgres.DBInterface
}

func NewAuctionRepository(db postgres.DBInterface) *AuctionRepository {
	return &AuctionRepository{
		DB: db,
	}
}

func (r *AuctionRepository) FindByTontine(ctx context.Context, tontineID int64) ([]entity.Auction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var auctions []entity.Auction
	query := `
		SELECT id, tontine_id, user_id, amount, created_at
		FROM auctions
		WHERE tontine_id = $1
		ORDER BY created_at DESC
	`
	if err = db.SelectContext(ctx, &auctions, query, tontineID); err != nil {
		return nil, err
	}

	return auctions, nil
}
