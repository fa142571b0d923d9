package dto

import (
	"github.com/go-playground/validator/v10"

	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/record"
)

var validate = validator.New()

type InvitationCreateRequest struct {
	EventID int64 `json:"event_id" validate:"required,gt=0"`
}

func (r InvitationCreateRequest) Validate() map[string][]string {
	return helper.ValidationErrors(validate.Struct(r))
}

func (r InvitationCreateRequest) ToRecord() record.InvitationRecord {
	return record.InvitationRecord{EventID: r.EventID}
}
