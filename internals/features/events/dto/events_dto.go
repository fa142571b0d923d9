package dto

import (
	"github.com/go-playground/validator/v10"

	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/record"
)

var validate = validator.New()

// EventCreateRequest carries the caller-supplied fields; slug and the
// bookkeeping fields are assigned by the service and store.
type EventCreateRequest struct {
	Title        string `json:"title"         validate:"required,max=255"`
	AddressLine1 string `json:"address_line1" validate:"required,max=255"`
	AddressLine2 string `json:"address_line2" validate:"max=255"`
	City         string `json:"city"          validate:"required,max=100"`
	State        string `json:"state"         validate:"required,len=2,alpha"`
	Postal       string `json:"postal"        validate:"required,max=10"`
}

func (r EventCreateRequest) Validate() map[string][]string {
	return helper.ValidationErrors(validate.Struct(r))
}

func (r EventCreateRequest) ToRecord() record.EventRecord {
	return record.EventRecord{
		Title:        r.Title,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Postal:       r.Postal,
	}
}

// EventUpdateRequest is a full replacement of the domain fields plus the
// concurrency token from the read the caller is editing. The slug is not
// updatable: it is a published identifier.
type EventUpdateRequest struct {
	Title            string `json:"title"             validate:"required,max=255"`
	AddressLine1     string `json:"address_line1"     validate:"required,max=255"`
	AddressLine2     string `json:"address_line2"     validate:"max=255"`
	City             string `json:"city"              validate:"required,max=100"`
	State            string `json:"state"             validate:"required,len=2,alpha"`
	Postal           string `json:"postal"            validate:"required,max=10"`
	ConcurrencyToken string `json:"concurrency_token" validate:"required"`
}

func (r EventUpdateRequest) Validate() map[string][]string {
	return helper.ValidationErrors(validate.Struct(r))
}

// Apply overlays the request onto the stored record, keeping id, slug and
// timestamps from the stored row and the token from the caller's read.
func (r EventUpdateRequest) Apply(cur record.EventRecord) record.EventRecord {
	cur.Title = r.Title
	cur.AddressLine1 = r.AddressLine1
	cur.AddressLine2 = r.AddressLine2
	cur.City = r.City
	cur.State = r.State
	cur.Postal = r.Postal
	cur.ConcurrencyToken = r.ConcurrencyToken
	return cur
}
