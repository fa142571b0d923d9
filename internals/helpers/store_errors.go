package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"rsvphub_backend/internals/persistence/filter"
	"rsvphub_backend/internals/persistence/repository"
)

// JsonStoreError maps the persistence error taxonomy onto HTTP. Callers
// react differently to conflict vs not-found vs bad filter, so nothing is
// collapsed into a blanket 500 except genuinely unknown failures.
func JsonStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return JsonError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, repository.ErrConcurrencyConflict):
		return JsonError(c, fiber.StatusConflict, "record was changed by someone else; reload and retry")
	case errors.Is(err, repository.ErrDuplicateKey):
		return JsonError(c, fiber.StatusConflict, "duplicate value")
	case errors.Is(err, filter.ErrUnsupportedField):
		return JsonError(c, fiber.StatusBadRequest, "unsupported filter field")
	case errors.Is(err, repository.ErrNotRegistered):
		log.Error().Err(err).Msg("persistence binding missing")
		return JsonError(c, fiber.StatusInternalServerError, "server misconfiguration")
	default:
		log.Error().Err(err).Msg("store failure")
		return JsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}
