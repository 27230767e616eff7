package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tontine-service/src/internal/entity"
	"tontine-service/src/pkg/databases/postgres"

	"github.com/lib/pq"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateDeposit = errors.New("deposit already processed")
)

const pqUniqueViolation = "23505"

type TransactionRepository struct {
	DB postgres.DBInterface
}

func NewTransactionRepository(db postgres.DBInterface) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

// ApplyDeposit locks the user row, increments the balance and appends the
// ledger entry in one DB transaction. A repeated provider reference trips the
// unique index on transactions.provider_ref and comes back as
// ErrDuplicateDeposit with nothing applied.
func (r *TransactionRepository) ApplyDeposit(ctx context.Context, userID int64, amount float64, providerRef string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin deposit transaction: %w", err)
	}
	defer tx.Rollback()

	var balance float64
	err = tx.GetContext(ctx, &balance, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("lock user row: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET balance = balance + $1 WHERE id = $2`,
		amount, userID,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (user_id, amount, type, status, method, provider_ref, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW())`,
		userID, amount,
		entity.TransactionTypeDeposit,
		entity.TransactionStatusCompleted,
		entity.TransactionMethodMobile,
		providerRef,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicateDeposit
		}
		return fmt.Errorf("insert transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit deposit transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID int64) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	query := `
		SELECT id, user_id, amount, type, status, method, provider_ref, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	if err = db.SelectContext(ctx, &transactions, query, userID); err != nil {
		return nil, err
	}

	return transactions, nil
}
