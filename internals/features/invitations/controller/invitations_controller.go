package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rsvphub_backend/internals/features/invitations/dto"
	"rsvphub_backend/internals/features/invitations/service"
	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/repository"
)

type InvitationController struct {
	svc *service.InvitationService
}

func NewInvitationController(svc *service.InvitationService) *InvitationController {
	return &InvitationController{svc: svc}
}

func listScope(c *fiber.Ctx) repository.Scope {
	if c.QueryBool("include_deleted") {
		return repository.ScopeAll
	}
	return repository.ScopeActive
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// POST /api/invitations
func (ctrl *InvitationController) Create(c *fiber.Ctx) error {
	var req dto.InvitationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	out, err := ctrl.svc.Create(c.UserContext(), req.ToRecord())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "event not found")
		}
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonCreated(c, "invitation created", out)
}

// GET /api/invitations/:id
func (ctrl *InvitationController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invitation id")
	}
	rec, err := ctrl.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invitation not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/invitations/slug/:slug
func (ctrl *InvitationController) GetBySlug(c *fiber.Ctx) error {
	rec, err := ctrl.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "invitation not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/invitations?event_id=
func (ctrl *InvitationController) List(c *fiber.Ctx) error {
	scope := listScope(c)
	ctx := c.UserContext()

	if raw := c.Query("event_id"); raw != "" {
		eventID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid event_id")
		}
		recs, err := ctrl.svc.ListByEvent(ctx, eventID, scope)
		if err != nil {
			return helper.JsonStoreError(c, err)
		}
		return helper.JsonOK(c, "", recs)
	}

	recs, err := ctrl.svc.List(ctx, scope)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "", recs)
}

// DELETE /api/invitations/:id (soft)
func (ctrl *InvitationController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invitation id")
	}
	if err := ctrl.svc.SoftDelete(c.UserContext(), id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonDeleted(c, "invitation deleted", fiber.Map{"id": id})
}
