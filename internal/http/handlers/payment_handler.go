package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/fixture"
	applog "minishop/internal/log"
)

type PaymentHandler struct {
	Store *fixture.Store
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var p domain.Payment
	if err := c.BodyParser(&p); err != nil {
		return badBody(c, err)
	}
	p.PaymentID = h.Store.NextPaymentID()
	h.Store.AddPayment(p)
	applog.Audit(c, "fixture.payment.create", map[string]any{
		"paymentId": p.PaymentID,
		"orderId":   p.OrderID,
		"status":    string(p.PaymentStatus),
	})
	return c.JSON(p)
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	return c.JSON(domain.Collection[domain.Payment]{Collection: h.Store.Payments()})
}
