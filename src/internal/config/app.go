package config

import (
	"tontine-service/src/internal/delivery/http"
	"tontine-service/src/internal/delivery/http/route"
	"tontine-service/src/internal/gateway/messaging"
	"tontine-service/src/internal/gateway/monetbil"
	"tontine-service/src/internal/repository"
	"tontine-service/src/internal/usecase"
	"tontine-service/src/pkg/databases/postgres"
	kafkaPkgConfluent "tontine-service/src/pkg/kafka/confluent"
	"tontine-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       postgres.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkgConfluent.Producer
	Monetbil *monetbil.Client
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	tontineRepository := repository.NewTontineRepository(config.DB)
	auctionRepository := repository.NewAuctionRepository(config.DB)
	socialRepository := repository.NewSocialRepository(config.DB)

	// the deposit event stream is optional, the webhook flow works without it
	var depositProducer usecase.DepositPublisher
	if config.Producer != nil {
		depositProducer = messaging.NewTransactionProducer(config.Producer, config.Log)
	}

	// setup use cases
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, userRepository, transactionRepository)
	tontineUseCase := usecase.NewTontineUseCase(config.Log, config.Validate, tontineRepository, auctionRepository)
	socialUseCase := usecase.NewSocialUseCase(config.Log, socialRepository)
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		config.Monetbil,
		transactionRepository,
		depositProducer,
	)

	// setup controllers
	userController := http.NewUserController(userUseCase, config.Log)
	tontineController := http.NewTontineController(tontineUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	socialController := http.NewSocialController(socialUseCase, config.Log)

	routeConfig := route.RouteConfig{
		App:               config.App,
		UserController:    userController,
		TontineController: tontineController,
		PaymentController: paymentController,
		SocialController:  socialController,
	}
	routeConfig.Setup()
}
