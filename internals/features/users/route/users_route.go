package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rsvphub_backend/internals/features/users/controller"
	"rsvphub_backend/internals/features/users/service"
	"rsvphub_backend/internals/persistence/repository"
)

func UserRoutes(api fiber.Router, db *gorm.DB, clock repository.Clock) error {
	svc, err := service.NewUserService(db, clock)
	if err != nil {
		return err
	}
	ctrl := controller.NewUserController(svc)

	users := api.Group("/users")
	users.Post("/", ctrl.Create)
	users.Get("/", ctrl.List)
	users.Get("/slug/:slug", ctrl.GetBySlug)
	users.Get("/:id", ctrl.GetByID)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)
	return nil
}
