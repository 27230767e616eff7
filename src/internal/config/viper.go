package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json when present and falls back to the environment
// (WEB_PORT, DATABASE_HOST, MONETBIL_SERVICE_KEY, ...).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("./")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.ReadInConfig()
	return v
}
