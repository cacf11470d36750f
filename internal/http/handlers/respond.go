package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "minishop/internal/log"
)

func badBody(c *fiber.Ctx, err error) error {
	applog.Security(c, "body.parse.fail", map[string]any{"err": err.Error()})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
}

func badParam(c *fiber.Ctx, field string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + field})
}
