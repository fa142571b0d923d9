package mapper

import (
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
)

func EventToRecord(m *model.EventModel) record.EventRecord {
	return record.EventRecord{
		Base:         baseToRecord(m.Base),
		Slug:         m.Slug,
		Title:        m.Title,
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
		City:         m.City,
		State:        m.State,
		Postal:       m.Postal,
		DeletedAt:    copyTime(m.DeletedAt),
	}
}

func EventFromRecord(r record.EventRecord) model.EventModel {
	return model.EventModel{
		Base:         baseFromRecord(r.Base),
		Slug:         r.Slug,
		Title:        r.Title,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Postal:       r.Postal,
		DeletedAt:    copyTime(r.DeletedAt),
	}
}
