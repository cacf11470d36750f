// Package rest serves the production-contract CRUD surface: a miss is
// a 404 with a per-entity not-found error, never a synthesized default.
// The e2e fixture handlers implement the opposite policy on purpose;
// the two must not be mixed.
package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"minishop/internal/repos"
	"minishop/internal/services"
)

type Deps struct {
	UserAPI      *UserAPI
	CatalogAPI   *CatalogAPI
	OrderAPI     *OrderAPI
	PaymentAPI   *PaymentAPI
	FavouriteAPI *FavouriteAPI
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	userSvc := services.NewUserService(userRepo)

	return &Deps{
		UserAPI:      &UserAPI{Users: userRepo, Svc: userSvc},
		CatalogAPI:   &CatalogAPI{Catalog: repos.NewCatalogRepo(db)},
		OrderAPI:     &OrderAPI{Orders: repos.NewOrderRepo(db)},
		PaymentAPI:   &PaymentAPI{Payments: repos.NewPaymentRepo(db)},
		FavouriteAPI: &FavouriteAPI{Favourites: repos.NewFavouriteRepo(db)},
	}
}

func (d *Deps) Register(app *fiber.App) {
	app.Get("/api/users", d.UserAPI.List)
	app.Post("/api/users", d.UserAPI.Create)
	app.Get("/api/users/:id", d.UserAPI.Get)
	app.Put("/api/users/:id", d.UserAPI.Update)
	app.Delete("/api/users/:id", d.UserAPI.Delete)
	app.Get("/api/users/:id/addresses", d.UserAPI.Addresses)
	app.Post("/api/addresses", d.UserAPI.CreateAddress)
	app.Post("/api/credentials", d.UserAPI.CreateCredential)

	app.Get("/api/categories", d.CatalogAPI.Categories)
	app.Post("/api/categories", d.CatalogAPI.CreateCategory)
	app.Get("/api/categories/:id", d.CatalogAPI.GetCategory)
	app.Get("/api/products", d.CatalogAPI.Products)
	app.Post("/api/products", d.CatalogAPI.CreateProduct)
	app.Get("/api/products/:id", d.CatalogAPI.GetProduct)
	app.Put("/api/products/:id", d.CatalogAPI.UpdateProduct)
	app.Delete("/api/products/:id", d.CatalogAPI.DeleteProduct)

	app.Get("/api/orders", d.OrderAPI.List)
	app.Post("/api/orders", d.OrderAPI.Create)
	app.Get("/api/orders/:id", d.OrderAPI.Get)
	app.Put("/api/orders/:id", d.OrderAPI.Update)
	app.Delete("/api/orders/:id", d.OrderAPI.Delete)
	app.Get("/api/order-items", d.OrderAPI.Items)
	app.Post("/api/order-items", d.OrderAPI.AddItem)

	app.Get("/api/payments", d.PaymentAPI.List)
	app.Post("/api/payments", d.PaymentAPI.Create)
	app.Get("/api/payments/:id", d.PaymentAPI.Get)
	app.Put("/api/payments/:id/status", d.PaymentAPI.SetStatus)

	app.Get("/api/favourites", d.FavouriteAPI.List)
	app.Post("/api/favourites", d.FavouriteAPI.Create)
	app.Get("/api/favourites/:userId/:productId/:likeDate", d.FavouriteAPI.Get)
	app.Delete("/api/favourites/:userId/:productId/:likeDate", d.FavouriteAPI.Delete)
}
