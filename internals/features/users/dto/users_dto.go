package dto

import (
	"github.com/go-playground/validator/v10"

	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/record"
)

var validate = validator.New()

type UserCreateRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"required,e164"`
}

func (r UserCreateRequest) Validate() map[string][]string {
	return helper.ValidationErrors(validate.Struct(r))
}

func (r UserCreateRequest) ToRecord() record.UserRecord {
	return record.UserRecord{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

type UserUpdateRequest struct {
	FirstName        string `json:"first_name"        validate:"required,max=100"`
	LastName         string `json:"last_name"         validate:"required,max=100"`
	Phone            string `json:"phone"             validate:"required,e164"`
	ConcurrencyToken string `json:"concurrency_token" validate:"required"`
}

func (r UserUpdateRequest) Validate() map[string][]string {
	return helper.ValidationErrors(validate.Struct(r))
}

func (r UserUpdateRequest) Apply(cur record.UserRecord) record.UserRecord {
	cur.FirstName = r.FirstName
	cur.LastName = r.LastName
	cur.Phone = r.Phone
	cur.ConcurrencyToken = r.ConcurrencyToken
	return cur
}
