package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/fixture"
)

type OrderItemHandler struct {
	Store *fixture.Store
}

// Create stores the item as-is; identity is the (productId, orderId)
// pair, so no id gets generated.
func (h *OrderItemHandler) Create(c *fiber.Ctx) error {
	var oi domain.OrderItem
	if err := c.BodyParser(&oi); err != nil {
		return badBody(c, err)
	}
	h.Store.AddOrderItem(oi)
	return c.JSON(oi)
}

func (h *OrderItemHandler) List(c *fiber.Ctx) error {
	return c.JSON(domain.Collection[domain.OrderItem]{Collection: h.Store.OrderItems()})
}
