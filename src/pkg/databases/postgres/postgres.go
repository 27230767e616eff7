package postgres

import (
	"fmt"
	"time"

	"tontine-service/src/pkg/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type Database struct {
	db *sqlx.DB
}

// InitConnection opens the pool once at boot. The handle is injected into
// repositories and closed on shutdown, never held as package state.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		v.GetString("database.host"),
		v.GetString("database.port"),
		v.GetString("database.user"),
		v.GetString("database.password"),
		v.GetString("database.name"),
		v.GetString("database.sslmode"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logger.Error("postgres", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("database.max_open"))
	db.SetMaxIdleConns(v.GetInt("database.max_idle"))
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("postgres", "connected to database "+v.GetString("database.name"), "InitConnection", "")
	return &Database{db: db}, nil
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	return d.db, nil
}

func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
