package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/fixture"
	applog "minishop/internal/log"
)

type ProductHandler struct {
	Store *fixture.Store
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badBody(c, err)
	}
	p.ProductID = h.Store.NextProductID()
	h.Store.AddProduct(p)
	applog.Audit(c, "fixture.product.create", map[string]any{"productId": p.ProductID})
	return c.JSON(p)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(domain.Collection[domain.Product]{Collection: h.Store.Products()})
}

// Get synthesizes a record carrying only the requested id on miss.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badParam(c, "id")
	}
	p, ok := h.Store.ProductByID(id)
	if !ok {
		p = domain.Product{ProductID: id}
	}
	return c.JSON(p)
}

func (h *ProductHandler) CreateCategory(c *fiber.Ctx) error {
	var cat domain.Category
	if err := c.BodyParser(&cat); err != nil {
		return badBody(c, err)
	}
	cat.CategoryID = h.Store.NextCategoryID()
	return c.JSON(cat)
}
