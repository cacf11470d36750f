package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"minishop/internal/config"
	"minishop/internal/fixture"
	"minishop/internal/http/handlers"
	applog "minishop/internal/log"
	"minishop/internal/routing"
)

// The fixture server hosts every logical service's endpoints in one
// process, backed by the in-memory store. Misses come back as
// synthesized defaults, never errors; that is the point of it.
func main() {
	clusterFlag := flag.Bool("cluster", false, "force cluster deployment mode")
	flag.Parse()

	cfg := config.Load(*clusterFlag)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	// Tag each request with the logical service owning its path so log
	// lines can be split per service.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("service", routing.ServiceForEndpoint(c.Path()))
		return c.Next()
	})

	store := fixture.NewStore()
	deps := handlers.NewDeps(store)
	deps.Register(app)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
