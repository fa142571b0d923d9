package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rsvphub_backend/internals/features/reservations/dto"
	"rsvphub_backend/internals/features/reservations/service"
	helper "rsvphub_backend/internals/helpers"
)

type ReservationController struct {
	svc *service.ReservationService
}

func NewReservationController(svc *service.ReservationService) *ReservationController {
	return &ReservationController{svc: svc}
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// POST /api/reservations — create or change an RSVP; one row per
// (invitation, user) pair either way.
func (ctrl *ReservationController) Upsert(c *fiber.Ctx) error {
	var req dto.ReservationUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	out, err := ctrl.svc.Upsert(c.UserContext(), req.InvitationID, req.UserID, *req.PartySize)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "reservation saved", out)
}

// GET /api/reservations/:id
func (ctrl *ReservationController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid reservation id")
	}
	rec, err := ctrl.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "reservation not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/reservations?invitation_id=
func (ctrl *ReservationController) ListByInvitation(c *fiber.Ctx) error {
	invitationID, err := strconv.ParseInt(c.Query("invitation_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invitation_id")
	}
	recs, err := ctrl.svc.ListByInvitation(c.UserContext(), invitationID)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "", recs)
}

// GET /api/reservations/attending?invitation_id=
func (ctrl *ReservationController) TotalAttending(c *fiber.Ctx) error {
	invitationID, err := strconv.ParseInt(c.Query("invitation_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invitation_id")
	}
	total, err := ctrl.svc.TotalAttending(c.UserContext(), invitationID)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"invitation_id": invitationID, "total_attending": total})
}

// DELETE /api/reservations/:id — physical, idempotent
func (ctrl *ReservationController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid reservation id")
	}
	if err := ctrl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonDeleted(c, "reservation deleted", fiber.Map{"id": id})
}
