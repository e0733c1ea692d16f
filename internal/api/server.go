package api

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/finanalyzer/finanalyzer/internal/config"
)

// Server wraps the fiber app with its routes registered.
type Server struct {
	app *fiber.App
}

// NewServer builds the HTTP server for the given configuration.
func NewServer(cfg *config.Config, logger *log.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "finanalyzer",
		BodyLimit: cfg.MaxUploadMB << 20,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	h := &Handler{Config: cfg, Logger: logger}
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/convert", h.HandleConvert)

	return &Server{app: app}
}

// Listen serves until the listener fails.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}
