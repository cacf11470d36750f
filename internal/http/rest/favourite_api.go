package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	applog "minishop/internal/log"
	"minishop/internal/repos"
	"minishop/internal/validate"
)

type FavouriteAPI struct {
	Favourites *repos.FavouriteRepo
}

func (a *FavouriteAPI) List(c *fiber.Ctx) error {
	favs, err := a.Favourites.All()
	if err != nil {
		return fail(c, "favourite.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.Favourite]{Collection: favs})
}

func (a *FavouriteAPI) Create(c *fiber.Ctx) error {
	var f domain.Favourite
	if err := c.BodyParser(&f); err != nil {
		return badRequest(c, "malformed request body")
	}
	if f.UserID < 1 || f.ProductID < 1 {
		return badRequest(c, "userId and productId are required")
	}
	if f.LikeDate == "" {
		f.LikeDate = time.Now().UTC().Format(domain.LikeDateLayout)
	} else if _, err := time.Parse(domain.LikeDateLayout, f.LikeDate); err != nil {
		return badRequest(c, "invalid likeDate")
	}
	created, err := a.Favourites.Create(f)
	if err != nil {
		return fail(c, "favourite.create.fail", err)
	}
	applog.Audit(c, "favourite.create", map[string]any{"userId": f.UserID, "productId": f.ProductID})
	return c.JSON(created)
}

func (a *FavouriteAPI) key(c *fiber.Ctx) (int, int, string, bool) {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return 0, 0, "", false
	}
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return 0, 0, "", false
	}
	likeDate := c.Params("likeDate")
	if _, err := time.Parse(domain.LikeDateLayout, likeDate); err != nil {
		return 0, 0, "", false
	}
	return userID, productID, likeDate, true
}

// Get requires the complete composite key. A user who liked the same
// product twice has two rows here; likeDate disambiguates them.
func (a *FavouriteAPI) Get(c *fiber.Ctx) error {
	userID, productID, likeDate, ok := a.key(c)
	if !ok {
		return badRequest(c, "invalid favourite key")
	}
	f, err := a.Favourites.ByKey(userID, productID, likeDate)
	if err != nil {
		return fail(c, "favourite.get.fail", err)
	}
	return c.JSON(f)
}

func (a *FavouriteAPI) Delete(c *fiber.Ctx) error {
	userID, productID, likeDate, ok := a.key(c)
	if !ok {
		return badRequest(c, "invalid favourite key")
	}
	if err := a.Favourites.Delete(userID, productID, likeDate); err != nil {
		return fail(c, "favourite.delete.fail", err)
	}
	applog.Audit(c, "favourite.delete", map[string]any{"userId": userID, "productId": productID})
	return c.JSON(true)
}
