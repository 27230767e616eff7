package config

import (
	"tontine-service/src/internal/gateway/monetbil"
	"tontine-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewMonetbil(viper *viper.Viper, logger log.Log) *monetbil.Client {
	return monetbil.NewClient(monetbil.Config{
		ServiceKey: viper.GetString("monetbil.service_key"),
		BaseURL:    viper.GetString("monetbil.base_url"),
		NotifyURL:  viper.GetString("monetbil.notify_url"),
	}, logger)
}
