package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/fixture"
	applog "minishop/internal/log"
)

type OrderHandler struct {
	Store *fixture.Store
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return badBody(c, err)
	}
	o.OrderID = h.Store.NextOrderID()
	h.Store.AddOrder(o)
	applog.Audit(c, "fixture.order.create", map[string]any{"orderId": o.OrderID, "userId": o.UserID})
	return c.JSON(o)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badParam(c, "id")
	}
	o, ok := h.Store.OrderByID(id)
	if !ok {
		o = domain.Order{OrderID: id, OrderDesc: "Test Order"}
	}
	return c.JSON(o)
}
