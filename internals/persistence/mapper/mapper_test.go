package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvphub_backend/internals/persistence/record"
)

func fullBase() record.Base {
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)
	return record.Base{
		ID:               42,
		CreatedOn:        created,
		UpdatedOn:        &updated,
		ConcurrencyToken: "7f9c35b2-0001-4a8e-9f1a-2b44c1d5e6a7",
	}
}

func TestUserRoundTrip(t *testing.T) {
	in := record.UserRecord{
		Base:      fullBase(),
		Slug:      "ada-lovelace",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+15550001111",
		FullName:  "Ada Lovelace",
	}
	out := UserToRecord(ptr(UserFromRecord(in)))
	assert.Equal(t, in, out)
}

func TestEventRoundTrip(t *testing.T) {
	in := record.EventRecord{
		Base:         fullBase(),
		Slug:         "summer-bbq",
		Title:        "Summer BBQ",
		AddressLine1: "100 Main St",
		AddressLine2: "Suite 4",
		City:         "Austin",
		State:        "TX",
		Postal:       "78701",
	}
	out := EventToRecord(ptr(EventFromRecord(in)))
	assert.Equal(t, in, out)
}

func TestInvitationRoundTrip(t *testing.T) {
	in := record.InvitationRecord{
		Base:    fullBase(),
		Slug:    "summer-bbq-3",
		EventID: 7,
	}
	out := InvitationToRecord(ptr(InvitationFromRecord(in)))
	assert.Equal(t, in, out)
}

func TestReservationRoundTrip(t *testing.T) {
	in := record.ReservationRecord{
		Base:         fullBase(),
		InvitationID: 7,
		UserID:       42,
		PartySize:    3,
	}
	out := ReservationToRecord(ptr(ReservationFromRecord(in)))
	assert.Equal(t, in, out)
}

func TestSoftDeleteMarkerSurvivesRoundTrip(t *testing.T) {
	deleted := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	in := record.EventRecord{
		Base:      fullBase(),
		Slug:      "gone",
		Title:     "Gone",
		City:      "Austin",
		State:     "TX",
		Postal:    "78701",
		DeletedAt: &deleted,
	}
	out := EventToRecord(ptr(EventFromRecord(in)))
	assert.Equal(t, in, out)
}

// A record that has never been updated converts to a model whose
// updated_on falls back to created_on; the bookkeeping timestamp on the
// storage side is never nil.
func TestFromRecordDefaultsUpdatedOn(t *testing.T) {
	base := fullBase()
	base.UpdatedOn = nil
	m := EventFromRecord(record.EventRecord{Base: base, Slug: "x", Title: "X"})

	require.NotNil(t, m.UpdatedOn)
	assert.True(t, m.UpdatedOn.Equal(base.CreatedOn))
}

func TestUserFullNameDerived(t *testing.T) {
	m := UserFromRecord(record.UserRecord{
		Base:      fullBase(),
		Slug:      "ada",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+15550001111",
		FullName:  "stale value the mapper must not trust",
	})
	out := UserToRecord(&m)
	assert.Equal(t, "Ada Lovelace", out.FullName)
}

// mapping must not alias timestamps between record and model
func TestNoPointerAliasing(t *testing.T) {
	in := record.EventRecord{Base: fullBase(), Slug: "x", Title: "X"}
	m := EventFromRecord(in)
	require.NotNil(t, m.UpdatedOn)
	assert.NotSame(t, in.UpdatedOn, m.UpdatedOn)
}

func ptr[T any](v T) *T { return &v }
