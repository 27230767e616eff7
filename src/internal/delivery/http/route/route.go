package route

import (
	"tontine-service/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	UserController    *http.UserController
	TontineController *http.TontineController
	PaymentController *http.PaymentController
	SocialController  *http.SocialController
}

func (c *RouteConfig) Setup() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("tontine-service up")
	})

	api := c.App.Group("/api")
	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api.Post("/login", c.UserController.Login)
	api.Post("/users", c.UserController.Register)
	api.Get("/users/:id/balance", c.UserController.GetBalance)
	api.Get("/users/:id/transactions", c.UserController.GetTransactions)

	api.Get("/tontines", c.TontineController.List)
	api.Post("/tontines", c.TontineController.Create)
	api.Get("/tontines/:id/auctions", c.TontineController.ListAuctions)

	api.Get("/social/fund", c.SocialController.GetFund)
	api.Get("/social/events", c.SocialController.ListEvents)

	// /pay is the legacy alias kept for older app builds
	api.Post("/pay", c.PaymentController.Initiate)
	api.Post("/payments/initiate", c.PaymentController.Initiate)
	api.Post("/payments/webhook", c.PaymentController.Webhook)
}
