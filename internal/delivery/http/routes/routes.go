package routes

import (
	"prajnayana/internal/config"
	"prajnayana/internal/database"
	"prajnayana/internal/delivery/http/handler"
	v1 "prajnayana/internal/delivery/http/routes/v1"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler

	cfg   config.Config
	db    database.DB
	cache usecase.ContentCache
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.ContentCache) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		cfg:    cfg,
		db:     db,
		cache:  cache,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache)
}
