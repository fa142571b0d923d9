// Package mapper converts between the caller-facing records and the GORM
// models, one pure function pair per entity. Conversion is total for
// well-formed input: no I/O, no validation, no failure path.
//
// Round-trip law: for a record with every field populated (including the
// store-assigned ones), ToRecord(FromRecord(r)) == r.
package mapper

import (
	"time"

	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
)

// copyTime detaches a nullable timestamp so records and models never
// alias the same pointer.
func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func baseToRecord(b model.Base) record.Base {
	return record.Base{
		ID:               b.ID,
		CreatedOn:        b.CreatedOn,
		UpdatedOn:        copyTime(b.UpdatedOn),
		ConcurrencyToken: b.ConcurrencyToken,
	}
}

// baseFromRecord defaults updated_on to created_on when the record has
// never been updated, so a freshly converted model never carries a nil
// bookkeeping timestamp. The mutation executor overwrites the stamps on
// every write anyway.
func baseFromRecord(b record.Base) model.Base {
	updated := copyTime(b.UpdatedOn)
	if updated == nil {
		created := b.CreatedOn
		updated = &created
	}
	return model.Base{
		ID:               b.ID,
		CreatedOn:        b.CreatedOn,
		UpdatedOn:        updated,
		ConcurrencyToken: b.ConcurrencyToken,
	}
}
