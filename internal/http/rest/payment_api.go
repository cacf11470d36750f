package rest

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	applog "minishop/internal/log"
	"minishop/internal/repos"
	"minishop/internal/validate"
)

type PaymentAPI struct {
	Payments *repos.PaymentRepo
}

func (a *PaymentAPI) List(c *fiber.Ctx) error {
	payments, err := a.Payments.All()
	if err != nil {
		return fail(c, "payment.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.Payment]{Collection: payments})
}

func (a *PaymentAPI) Create(c *fiber.Ctx) error {
	var p domain.Payment
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "malformed request body")
	}
	if p.PaymentStatus != "" && !p.PaymentStatus.Valid() {
		return badRequest(c, "unknown payment status")
	}
	created, err := a.Payments.Create(p)
	if err != nil {
		return fail(c, "payment.create.fail", err)
	}
	applog.Audit(c, "payment.create", map[string]any{
		"paymentId": created.PaymentID,
		"orderId":   created.OrderID,
		"status":    string(created.PaymentStatus),
	})
	return c.JSON(created)
}

func (a *PaymentAPI) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	p, err := a.Payments.ByID(id)
	if err != nil {
		return fail(c, "payment.get.fail", err)
	}
	return c.JSON(p)
}

func (a *PaymentAPI) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var body struct {
		PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
		IsPayed       bool                 `json:"isPayed"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "malformed request body")
	}
	if !body.PaymentStatus.Valid() {
		return badRequest(c, "unknown payment status")
	}
	if err := a.Payments.SetStatus(id, body.PaymentStatus, body.IsPayed); err != nil {
		return fail(c, "payment.status.fail", err)
	}
	p, err := a.Payments.ByID(id)
	if err != nil {
		return fail(c, "payment.status.fail", err)
	}
	applog.Audit(c, "payment.status", map[string]any{"paymentId": id, "status": string(body.PaymentStatus)})
	return c.JSON(p)
}
