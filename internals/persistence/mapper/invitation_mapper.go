package mapper

import (
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
)

func InvitationToRecord(m *model.InvitationModel) record.InvitationRecord {
	return record.InvitationRecord{
		Base:      baseToRecord(m.Base),
		Slug:      m.Slug,
		EventID:   m.EventID,
		DeletedAt: copyTime(m.DeletedAt),
	}
}

func InvitationFromRecord(r record.InvitationRecord) model.InvitationModel {
	return model.InvitationModel{
		Base:      baseFromRecord(r.Base),
		Slug:      r.Slug,
		EventID:   r.EventID,
		DeletedAt: copyTime(r.DeletedAt),
	}
}
