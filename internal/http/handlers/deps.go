package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/fixture"
)

// Deps bundles the fixture harness handlers. Every handler shares one
// explicitly constructed store; there are no package-level instances.
type Deps struct {
	UserHandler      *UserHandler
	ProductHandler   *ProductHandler
	OrderHandler     *OrderHandler
	OrderItemHandler *OrderItemHandler
	PaymentHandler   *PaymentHandler
	FavouriteHandler *FavouriteHandler
}

func NewDeps(store *fixture.Store) *Deps {
	return &Deps{
		UserHandler:      &UserHandler{Store: store},
		ProductHandler:   &ProductHandler{Store: store},
		OrderHandler:     &OrderHandler{Store: store},
		OrderItemHandler: &OrderItemHandler{Store: store},
		PaymentHandler:   &PaymentHandler{Store: store},
		FavouriteHandler: &FavouriteHandler{Store: store},
	}
}

// Register mounts the full harness surface: every logical service's
// endpoints on one app.
func (d *Deps) Register(app *fiber.App) {
	app.Post("/api/users", d.UserHandler.Create)
	app.Get("/api/users/:id", d.UserHandler.Get)
	app.Post("/api/addresses", d.UserHandler.CreateAddress)
	app.Post("/api/credentials", d.UserHandler.CreateCredential)

	app.Post("/api/products", d.ProductHandler.Create)
	app.Get("/api/products", d.ProductHandler.List)
	app.Get("/api/products/:id", d.ProductHandler.Get)
	app.Post("/api/categories", d.ProductHandler.CreateCategory)

	app.Post("/api/orders", d.OrderHandler.Create)
	app.Get("/api/orders/:id", d.OrderHandler.Get)

	app.Post("/api/order-items", d.OrderItemHandler.Create)
	app.Get("/api/order-items", d.OrderItemHandler.List)

	app.Post("/api/payments", d.PaymentHandler.Create)
	app.Get("/api/payments", d.PaymentHandler.List)

	app.Post("/api/favourites", d.FavouriteHandler.Create)
	app.Get("/api/favourites", d.FavouriteHandler.List)
	app.Get("/api/favourites/:userId/:productId/:likeDate", d.FavouriteHandler.Get)
	app.Delete("/api/favourites/:userId/:productId/:likeDate", d.FavouriteHandler.Delete)
}
