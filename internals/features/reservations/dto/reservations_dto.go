package dto

import (
	"github.com/go-playground/validator/v10"

	helper "rsvphub_backend/internals/helpers"
)

var validate = validator.New()

// ReservationUpsertRequest is both the first RSVP and any change of
// mind: the service lands it on the single row for the
// (invitation_id, user_id) pair. PartySize 0 is a valid answer and means
// "declined".
type ReservationUpsertRequest struct {
	InvitationID int64 `json:"invitation_id" validate:"required,gt=0"`
	UserID       int64 `json:"user_id"       validate:"required,gt=0"`
	PartySize    *int  `json:"party_size"    validate:"required,gte=0"`
}

func (r ReservationUpsertRequest) Validate() map[string][]string {
	return helper.ValidationErrors(validate.Struct(r))
}
