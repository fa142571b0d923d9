// Package bindings is the compile-time registration table pairing each
// record type with its model. RegisterAll runs once at startup (and at
// the top of persistence tests); after that the generic executors resolve
// everything through the registry and nothing is looked up by name.
package bindings

import (
	"rsvphub_backend/internals/persistence/mapper"
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
	"rsvphub_backend/internals/persistence/repository"
)

// Column maps key on the shared record field names. FieldUserFullName is
// deliberately absent from the user map: it is derived, and a filter on
// it must fail translation instead of silently matching nothing.

var userColumns = map[string]string{
	record.FieldID:               "id",
	record.FieldCreatedOn:        "created_on",
	record.FieldUpdatedOn:        "updated_on",
	record.FieldConcurrencyToken: "concurrency_token",
	record.FieldSlug:             "slug",
	record.FieldUserFirstName:    "first_name",
	record.FieldUserLastName:     "last_name",
	record.FieldUserPhone:        "phone",
	record.FieldDeletedAt:        "deleted_at",
}

var eventColumns = map[string]string{
	record.FieldID:                "id",
	record.FieldCreatedOn:         "created_on",
	record.FieldUpdatedOn:         "updated_on",
	record.FieldConcurrencyToken:  "concurrency_token",
	record.FieldSlug:              "slug",
	record.FieldEventTitle:        "title",
	record.FieldEventAddressLine1: "address_line1",
	record.FieldEventAddressLine2: "address_line2",
	record.FieldEventCity:         "city",
	record.FieldEventState:        "state",
	record.FieldEventPostal:       "postal",
	record.FieldDeletedAt:         "deleted_at",
}

var invitationColumns = map[string]string{
	record.FieldID:                "id",
	record.FieldCreatedOn:         "created_on",
	record.FieldUpdatedOn:         "updated_on",
	record.FieldConcurrencyToken:  "concurrency_token",
	record.FieldSlug:              "slug",
	record.FieldInvitationEventID: "event_id",
	record.FieldDeletedAt:         "deleted_at",
}

var reservationColumns = map[string]string{
	record.FieldID:                      "id",
	record.FieldCreatedOn:               "created_on",
	record.FieldUpdatedOn:               "updated_on",
	record.FieldConcurrencyToken:        "concurrency_token",
	record.FieldReservationInvitationID: "invitation_id",
	record.FieldReservationUserID:       "user_id",
	record.FieldReservationPartySize:    "party_size",
}

func RegisterAll() {
	repository.Register(repository.Binding[record.UserRecord, model.UserModel]{
		Table:      model.UserModel{}.TableName(),
		Columns:    userColumns,
		SoftDelete: true,
		ToRecord:   mapper.UserToRecord,
		ToModel:    mapper.UserFromRecord,
		Meta:       func(m *model.UserModel) *model.Base { return &m.Base },
	})

	repository.Register(repository.Binding[record.EventRecord, model.EventModel]{
		Table:      model.EventModel{}.TableName(),
		Columns:    eventColumns,
		SoftDelete: true,
		ToRecord:   mapper.EventToRecord,
		ToModel:    mapper.EventFromRecord,
		Meta:       func(m *model.EventModel) *model.Base { return &m.Base },
	})

	repository.Register(repository.Binding[record.InvitationRecord, model.InvitationModel]{
		Table:      model.InvitationModel{}.TableName(),
		Columns:    invitationColumns,
		SoftDelete: true,
		ToRecord:   mapper.InvitationToRecord,
		ToModel:    mapper.InvitationFromRecord,
		Meta:       func(m *model.InvitationModel) *model.Base { return &m.Base },
	})

	repository.Register(repository.Binding[record.ReservationRecord, model.ReservationModel]{
		Table:      model.ReservationModel{}.TableName(),
		Columns:    reservationColumns,
		SoftDelete: false,
		ToRecord:   mapper.ReservationToRecord,
		ToModel:    mapper.ReservationFromRecord,
		Meta:       func(m *model.ReservationModel) *model.Base { return &m.Base },
	})
}
