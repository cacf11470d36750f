package rest

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	applog "minishop/internal/log"
	"minishop/internal/repos"
	"minishop/internal/validate"
)

type OrderAPI struct {
	Orders *repos.OrderRepo
}

func (a *OrderAPI) List(c *fiber.Ctx) error {
	orders, err := a.Orders.All()
	if err != nil {
		return fail(c, "order.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.Order]{Collection: orders})
}

func (a *OrderAPI) Create(c *fiber.Ctx) error {
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return badRequest(c, "malformed request body")
	}
	if o.OrderFee < 0 {
		return badRequest(c, "order fee must not be negative")
	}
	created, err := a.Orders.Create(o)
	if err != nil {
		return fail(c, "order.create.fail", err)
	}
	applog.Audit(c, "order.create", map[string]any{"orderId": created.OrderID, "userId": created.UserID})
	return c.JSON(created)
}

func (a *OrderAPI) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	o, err := a.Orders.ByID(id)
	if err != nil {
		return fail(c, "order.get.fail", err)
	}
	return c.JSON(o)
}

func (a *OrderAPI) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return badRequest(c, "malformed request body")
	}
	o.OrderID = id
	updated, err := a.Orders.Update(o)
	if err != nil {
		return fail(c, "order.update.fail", err)
	}
	return c.JSON(updated)
}

func (a *OrderAPI) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := a.Orders.Delete(id); err != nil {
		return fail(c, "order.delete.fail", err)
	}
	applog.Audit(c, "order.delete", map[string]any{"orderId": id})
	return c.JSON(true)
}

func (a *OrderAPI) Items(c *fiber.Ctx) error {
	items, err := a.Orders.Items()
	if err != nil {
		return fail(c, "orderitem.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.OrderItem]{Collection: items})
}

func (a *OrderAPI) AddItem(c *fiber.Ctx) error {
	var oi domain.OrderItem
	if err := c.BodyParser(&oi); err != nil {
		return badRequest(c, "malformed request body")
	}
	if _, err := a.Orders.ByID(oi.OrderID); err != nil {
		return fail(c, "orderitem.create.fail", err)
	}
	oi.OrderedQuantity = validate.Qty(oi.OrderedQuantity)
	if err := a.Orders.AddItem(oi); err != nil {
		return fail(c, "orderitem.create.fail", err)
	}
	return c.JSON(oi)
}
