package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rsvphub_backend/internals/features/events/controller"
	"rsvphub_backend/internals/features/events/service"
	"rsvphub_backend/internals/persistence/repository"
)

func EventRoutes(api fiber.Router, db *gorm.DB, clock repository.Clock) error {
	svc, err := service.NewEventService(db, clock)
	if err != nil {
		return err
	}
	ctrl := controller.NewEventController(svc)

	events := api.Group("/events")
	events.Post("/", ctrl.Create)
	events.Get("/", ctrl.List)
	events.Get("/slug/:slug", ctrl.GetBySlug)
	events.Get("/:id", ctrl.GetByID)
	events.Put("/:id", ctrl.Update)
	events.Delete("/:id", ctrl.Delete)
	return nil
}
