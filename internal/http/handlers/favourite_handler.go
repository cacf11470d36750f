package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/fixture"
	applog "minishop/internal/log"
)

type FavouriteHandler struct {
	Store *fixture.Store
}

func (h *FavouriteHandler) Create(c *fiber.Ctx) error {
	var f domain.Favourite
	if err := c.BodyParser(&f); err != nil {
		return badBody(c, err)
	}
	h.Store.AddFavourite(f)
	applog.Audit(c, "fixture.favourite.create", map[string]any{"userId": f.UserID, "productId": f.ProductID})
	return c.JSON(f)
}

func (h *FavouriteHandler) List(c *fiber.Ctx) error {
	return c.JSON(domain.Collection[domain.Favourite]{Collection: h.Store.Favourites()})
}

// Get looks up by (userId, productId) only; the likeDate path segment
// is accepted but not used as a discriminator.
func (h *FavouriteHandler) Get(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return badParam(c, "userId")
	}
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return badParam(c, "productId")
	}
	f, ok := h.Store.FavouriteByKey(userID, productID)
	if !ok {
		f = domain.Favourite{UserID: userID, ProductID: productID}
	}
	return c.JSON(f)
}

// Delete always reports success, whether or not the favourite exists.
func (h *FavouriteHandler) Delete(c *fiber.Ctx) error {
	applog.Audit(c, "fixture.favourite.delete", map[string]any{
		"userId":    c.Params("userId"),
		"productId": c.Params("productId"),
	})
	return c.JSON(true)
}
