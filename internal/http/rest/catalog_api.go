package rest

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/repos"
	"minishop/internal/validate"
)

type CatalogAPI struct {
	Catalog *repos.CatalogRepo
}

func (a *CatalogAPI) Categories(c *fiber.Ctx) error {
	cats, err := a.Catalog.Categories()
	if err != nil {
		return fail(c, "category.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.Category]{Collection: cats})
}

func (a *CatalogAPI) CreateCategory(c *fiber.Ctx) error {
	var cat domain.Category
	if err := c.BodyParser(&cat); err != nil {
		return badRequest(c, "malformed request body")
	}
	created, err := a.Catalog.CreateCategory(cat)
	if err != nil {
		return fail(c, "category.create.fail", err)
	}
	return c.JSON(created)
}

func (a *CatalogAPI) GetCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	cat, err := a.Catalog.CategoryByID(id)
	if err != nil {
		return fail(c, "category.get.fail", err)
	}
	return c.JSON(cat)
}

func (a *CatalogAPI) Products(c *fiber.Ctx) error {
	products, err := a.Catalog.Products()
	if err != nil {
		return fail(c, "product.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.Product]{Collection: products})
}

func (a *CatalogAPI) CreateProduct(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "malformed request body")
	}
	if p.PriceUnit < 0 || p.Quantity < 0 {
		return badRequest(c, "price and quantity must not be negative")
	}
	created, err := a.Catalog.CreateProduct(p)
	if err != nil {
		return fail(c, "product.create.fail", err)
	}
	return c.JSON(created)
}

func (a *CatalogAPI) GetProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	p, err := a.Catalog.ProductByID(id)
	if err != nil {
		return fail(c, "product.get.fail", err)
	}
	return c.JSON(p)
}

func (a *CatalogAPI) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "malformed request body")
	}
	p.ProductID = id
	updated, err := a.Catalog.UpdateProduct(p)
	if err != nil {
		return fail(c, "product.update.fail", err)
	}
	return c.JSON(updated)
}

func (a *CatalogAPI) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := a.Catalog.DeleteProduct(id); err != nil {
		return fail(c, "product.delete.fail", err)
	}
	return c.JSON(true)
}
