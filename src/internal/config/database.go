package config

import (
	"tontine-service/src/pkg/databases/postgres"
	"tontine-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewDatabase(viper *viper.Viper, log log.Log) postgres.DBInterface {
	db, err := postgres.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
	}

	return db
}
