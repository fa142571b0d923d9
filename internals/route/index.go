package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	eventRoutes "rsvphub_backend/internals/features/events/route"
	invitationRoutes "rsvphub_backend/internals/features/invitations/route"
	reservationRoutes "rsvphub_backend/internals/features/reservations/route"
	userRoutes "rsvphub_backend/internals/features/users/route"
	"rsvphub_backend/internals/persistence/repository"
)

// SetupRoutes mounts every feature under /api. Route construction fails
// only on a missing persistence binding, which is a startup bug.
func SetupRoutes(app *fiber.App, db *gorm.DB, clock repository.Clock) error {
	api := app.Group("/api")

	log.Info().Msg("mounting event routes")
	if err := eventRoutes.EventRoutes(api, db, clock); err != nil {
		return err
	}

	log.Info().Msg("mounting user routes")
	if err := userRoutes.UserRoutes(api, db, clock); err != nil {
		return err
	}

	log.Info().Msg("mounting invitation routes")
	if err := invitationRoutes.InvitationRoutes(api, db, clock); err != nil {
		return err
	}

	log.Info().Msg("mounting reservation routes")
	if err := reservationRoutes.ReservationRoutes(api, db, clock); err != nil {
		return err
	}

	return nil
}
