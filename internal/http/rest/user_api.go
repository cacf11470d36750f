package rest

import (
	"github.com/gofiber/fiber/v2"

	"minishop/internal/domain"
	applog "minishop/internal/log"
	"minishop/internal/repos"
	"minishop/internal/services"
	"minishop/internal/validate"
)

type UserAPI struct {
	Users *repos.UserRepo
	Svc   *services.UserService
}

func (a *UserAPI) List(c *fiber.Ctx) error {
	users, err := a.Users.All()
	if err != nil {
		return fail(c, "user.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.User]{Collection: users})
}

func (a *UserAPI) Create(c *fiber.Ctx) error {
	var u domain.User
	if err := c.BodyParser(&u); err != nil {
		return badRequest(c, "malformed request body")
	}
	created, err := a.Svc.Register(u)
	if err != nil {
		return badRequest(c, err.Error())
	}
	applog.Audit(c, "user.create", map[string]any{"userId": created.UserID})
	return c.JSON(created)
}

func (a *UserAPI) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	u, err := a.Users.ByID(id)
	if err != nil {
		return fail(c, "user.get.fail", err)
	}
	return c.JSON(u)
}

func (a *UserAPI) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var u domain.User
	if err := c.BodyParser(&u); err != nil {
		return badRequest(c, "malformed request body")
	}
	u.UserID = id
	updated, err := a.Users.Update(u)
	if err != nil {
		return fail(c, "user.update.fail", err)
	}
	applog.Audit(c, "user.update", map[string]any{"userId": id})
	return c.JSON(updated)
}

func (a *UserAPI) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := a.Users.Delete(id); err != nil {
		return fail(c, "user.delete.fail", err)
	}
	applog.Audit(c, "user.delete", map[string]any{"userId": id})
	return c.JSON(true)
}

func (a *UserAPI) Addresses(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	addrs, err := a.Users.AddressesByUser(id)
	if err != nil {
		return fail(c, "address.list.fail", err)
	}
	return c.JSON(domain.Collection[domain.Address]{Collection: addrs})
}

func (a *UserAPI) CreateAddress(c *fiber.Ctx) error {
	var addr domain.Address
	if err := c.BodyParser(&addr); err != nil {
		return badRequest(c, "malformed request body")
	}
	if _, ok := validate.PostalCode(addr.PostalCode); !ok {
		return badRequest(c, "invalid postal code")
	}
	if _, err := a.Users.ByID(addr.UserID); err != nil {
		return fail(c, "address.create.fail", err)
	}
	created, err := a.Users.CreateAddress(addr)
	if err != nil {
		return fail(c, "address.create.fail", err)
	}
	return c.JSON(created)
}

func (a *UserAPI) CreateCredential(c *fiber.Ctx) error {
	var cr domain.Credential
	if err := c.BodyParser(&cr); err != nil {
		return badRequest(c, "malformed request body")
	}
	created, err := a.Svc.AddCredential(cr)
	if err != nil {
		if repos.IsNotFound(err) {
			return fail(c, "credential.create.fail", err)
		}
		return badRequest(c, err.Error())
	}
	applog.Audit(c, "credential.create", map[string]any{"userId": created.UserID})
	return c.JSON(created)
}
