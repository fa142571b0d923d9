package mapper

import (
	"strings"

	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
)

func UserToRecord(m *model.UserModel) record.UserRecord {
	return record.UserRecord{
		Base:      baseToRecord(m.Base),
		Slug:      m.Slug,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		DeletedAt: copyTime(m.DeletedAt),
		FullName:  strings.TrimSpace(m.FirstName + " " + m.LastName),
	}
}

// UserFromRecord drops the derived FullName; it has no column.
func UserFromRecord(r record.UserRecord) model.UserModel {
	return model.UserModel{
		Base:      baseFromRecord(r.Base),
		Slug:      r.Slug,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		DeletedAt: copyTime(r.DeletedAt),
	}
}
