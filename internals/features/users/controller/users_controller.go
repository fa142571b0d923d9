package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rsvphub_backend/internals/features/users/dto"
	"rsvphub_backend/internals/features/users/service"
	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/repository"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{svc: svc}
}

func listScope(c *fiber.Ctx) repository.Scope {
	if c.QueryBool("include_deleted") {
		return repository.ScopeAll
	}
	return repository.ScopeActive
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// POST /api/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
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
	return helper.JsonCreated(c, "user created", out)
}

// GET /api/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	rec, err := ctrl.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/users/slug/:slug
func (ctrl *UserController) GetBySlug(c *fiber.Ctx) error {
	rec, err := ctrl.svc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	return helper.JsonOK(c, "", rec)
}

// GET /api/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	recs, err := ctrl.svc.List(c.UserContext(), listScope(c))
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	paging := helper.ResolvePaging(c, 25, 200)
	lo := paging.Offset
	if lo > len(recs) {
		lo = len(recs)
	}
	hi := lo + paging.Limit
	if hi > len(recs) {
		hi = len(recs)
	}
	return helper.JsonList(c, "", recs[lo:hi],
		helper.BuildPaginationFromPage(int64(len(recs)), paging.Page, paging.PerPage))
}

// PUT /api/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	var req dto.UserUpdateRequest
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
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}

	out, err := ctrl.svc.Update(c.UserContext(), req.Apply(*cur))
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "user updated", out)
}

// DELETE /api/users/:id (soft)
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if err := ctrl.svc.SoftDelete(c.UserContext(), id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonDeleted(c, "user deleted", fiber.Map{"id": id})
}
