package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rsvphub_backend/internals/features/events/dto"
	"rsvphub_backend/internals/features/events/service"
	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/repository"
)

type EventController struct {
	svc *service.EventService
}

func NewEventController(svc *service.EventService) *EventController {
	return &EventController{svc: svc}
}

// listScope reads ?include_deleted=true; the history view is an explicit
// opt-in, never a default.
func listScope(c *fiber.Ctx) repository.Scope {
	if c.QueryBool("include_deleted") {
		return repository.ScopeAll
	}
	return repository.ScopeActive
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// POST /api/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	out, err := ctrl.svc.Create(c.UserContext(), req.ToRecord())
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonCreated(c, "event created", out)
}

// GET /api/events/:id
func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}
	rec, err := ctrl.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "event not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/events/slug/:slug
func (ctrl *EventController) GetBySlug(c *fiber.Ctx) error {
	rec, err := ctrl.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "event not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/events?include_deleted=&page=&per_page=
func (ctrl *EventController) List(c *fiber.Ctx) error {
	scope := listScope(c)
	paging := helper.ResolvePaging(c, 25, 200)

	recs, err := ctrl.svc.List(c.UserContext(), scope)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	total := int64(len(recs))

	// page in memory; listings are small and unordered by contract
	lo := paging.Offset
	if lo > len(recs) {
		lo = len(recs)
	}
	hi := lo + paging.Limit
	if hi > len(recs) {
		hi = len(recs)
	}
	return helper.JsonList(c, "", recs[lo:hi],
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/events/:id
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}
	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	cur, err := ctrl.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if cur == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "event not found")
	}

	out, err := ctrl.svc.Update(c.UserContext(), req.Apply(*cur))
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "event updated", out)
}

// DELETE /api/events/:id (soft)
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}
	if err := ctrl.svc.SoftDelete(c.UserContext(), id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonDeleted(c, "event deleted", fiber.Map{"id": id})
}
