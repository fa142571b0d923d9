package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rsvphub_backend/internals/features/invitations/controller"
	"rsvphub_backend/internals/features/invitations/service"
	"rsvphub_backend/internals/persistence/repository"
)

func InvitationRoutes(api fiber.Router, db *gorm.DB, clock repository.Clock) error {
	svc, err := service.NewInvitationService(db, clock)
	if err != nil {
		return err
	}
	ctrl := controller.NewInvitationController(svc)

	invitations := api.Group("/invitations")
	invitations.Post("/", ctrl.Create)
	invitations.Get("/", ctrl.List)
	invitations.Get("/slug/:slug", ctrl.GetBySlug)
	invitations.Get("/:id", ctrl.GetByID)
	invitations.Delete("/:id", ctrl.Delete)
	return nil
}
