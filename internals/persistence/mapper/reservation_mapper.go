package mapper

import (
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
)

func ReservationToRecord(m *model.ReservationModel) record.ReservationRecord {
	return record.ReservationRecord{
		Base:         baseToRecord(m.Base),
		InvitationID: m.InvitationID,
		UserID:       m.UserID,
		PartySize:    m.PartySize,
	}
}

func ReservationFromRecord(r record.ReservationRecord) model.ReservationModel {
	return model.ReservationModel{
		Base:         baseFromRecord(r.Base),
		InvitationID: r.InvitationID,
		UserID:       r.UserID,
		PartySize:    r.PartySize,
	}
}
