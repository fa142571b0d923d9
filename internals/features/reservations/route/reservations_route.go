package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rsvphub_backend/internals/features/reservations/controller"
	"rsvphub_backend/internals/features/reservations/service"
	"rsvphub_backend/internals/persistence/repository"
)

func ReservationRoutes(api fiber.Router, db *gorm.DB, clock repository.Clock) error {
	svc, err := service.NewReservationService(db, clock)
	if err != nil {
		return err
	}
	ctrl := controller.NewReservationController(svc)

	reservations := api.Group("/reservations")
	reservations.Post("/", ctrl.Upsert)
	reservations.Get("/", ctrl.ListByInvitation)
	reservations.Get("/attending", ctrl.TotalAttending)
	reservations.Get("/:id", ctrl.GetByID)
	reservations.Delete("/:id", ctrl.Delete)
	return nil
}
