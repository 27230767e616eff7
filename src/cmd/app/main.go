package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tontine-service/src/internal/config"
	"tontine-service/src/internal/delivery/http/middleware"
	"tontine-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "TONTINE_SERVICE")
	viperConfig.SetDefault("web.port", 3000)
	viperConfig.SetDefault("database.sslmode", "disable")
	viperConfig.SetDefault("database.max_open", 10)
	viperConfig.SetDefault("database.max_idle", 5)

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	monetbilClient := config.NewMonetbil(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())

	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Monetbil: monetbilClient,
	})

	webPort := viperConfig.GetInt("web.port")
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("main", fmt.Sprintf("Server listening on :%d", webPort), "startup", "")
		serverErrors <- app.Listen(fmt.Sprintf(":%d", webPort))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "startup", "")
	case sig := <-quit:
		logger.Info("main", fmt.Sprintf("Signal %v received, shutting down", sig), "graceful", "")
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
	}

	if producer != nil {
		producer.Close()
	}
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
		}
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
