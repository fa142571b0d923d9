package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rsvphub_backend/internals/persistence/bindings"
	"rsvphub_backend/internals/persistence/filter"
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
	"rsvphub_backend/internals/persistence/repository"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	// one connection: a second pool connection would see its own empty
	// in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.EventModel{},
		&model.InvitationModel{},
		&model.ReservationModel{},
	))
	bindings.RegisterAll()
	return db
}

func newEventPair(t *testing.T, db *gorm.DB, clock repository.Clock) (
	*repository.Query[record.EventRecord, model.EventModel],
	*repository.Store[record.EventRecord, model.EventModel],
) {
	t.Helper()
	q, err := repository.NewQuery[record.EventRecord, model.EventModel](db)
	require.NoError(t, err)
	s, err := repository.NewStore[record.EventRecord, model.EventModel](db, clock)
	require.NoError(t, err)
	return q, s
}

func sampleEvent(slug string) record.EventRecord {
	return record.EventRecord{
		Slug:         slug,
		Title:        "Summer BBQ",
		AddressLine1: "100 Main St",
		City:         "Austin",
		State:        "TX",
		Postal:       "78701",
	}
}

type unboundRecord struct{ record.Base }

func TestLookupUnregisteredType(t *testing.T) {
	db := newTestDB(t)

	_, err := repository.NewQuery[unboundRecord, model.EventModel](db)
	require.ErrorIs(t, err, repository.ErrNotRegistered)

	_, err = repository.NewStore[unboundRecord, model.EventModel](db, nil)
	require.ErrorIs(t, err, repository.ErrNotRegistered)
}

func TestCreateStampsBookkeeping(t *testing.T) {
	db := newTestDB(t)
	clock := newClock()
	_, store := newEventPair(t, db, clock)
	ctx := context.Background()

	in := sampleEvent("summer-bbq")
	in.ID = 999 // must be discarded
	in.ConcurrencyToken = "caller-supplied, must be replaced"

	out, err := store.Create(ctx, in)
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.NotEqual(t, int64(999), out.ID)
	assert.True(t, out.CreatedOn.Equal(clock.now))
	assert.Nil(t, out.UpdatedOn)
	assert.NotEmpty(t, out.ConcurrencyToken)
	assert.NotEqual(t, in.ConcurrencyToken, out.ConcurrencyToken)
}

func TestUpdateStampsAndRotatesToken(t *testing.T) {
	db := newTestDB(t)
	clock := newClock()
	_, store := newEventPair(t, db, clock)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleEvent("summer-bbq"))
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	created.Title = "Summer BBQ (rescheduled)"
	updated, err := store.Update(ctx, created)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedOn.Equal(created.CreatedOn), "created_on must never change")
	require.NotNil(t, updated.UpdatedOn)
	assert.True(t, updated.UpdatedOn.Equal(clock.now))
	assert.NotEqual(t, created.ConcurrencyToken, updated.ConcurrencyToken)
	assert.Equal(t, "Summer BBQ (rescheduled)", updated.Title)
}

func TestUpdateStaleTokenConflict(t *testing.T) {
	db := newTestDB(t)
	clock := newClock()
	query, store := newEventPair(t, db, clock)
	ctx := context.Background()

	created, err := store.Create(ctx, sampleEvent("summer-bbq"))
	require.NoError(t, err)

	// writer A wins
	winner := created
	winner.Title = "Winner"
	_, err = store.Update(ctx, winner)
	require.NoError(t, err)

	// writer B still holds the original token and must lose
	loser := created
	loser.Title = "Loser"
	_, err = store.Update(ctx, loser)
	require.ErrorIs(t, err, repository.ErrConcurrencyConflict)

	// the winner's write is intact
	got, err := query.FindByID(ctx, created.ID, repository.ScopeActive)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Winner", got.Title)
}

func TestUpdateMissingRow(t *testing.T) {
	db := newTestDB(t)
	_, store := newEventPair(t, db, newClock())
	ctx := context.Background()

	rec := sampleEvent("ghost")
	rec.ID = 12345
	rec.ConcurrencyToken = "anything"
	_, err := store.Update(ctx, rec)
	require.ErrorIs(t, err, repository.ErrNotFound)

	rec.ID = 0
	_, err = store.Update(ctx, rec)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDuplicateSlugInsert(t *testing.T) {
	db := newTestDB(t)
	_, store := newEventPair(t, db, newClock())
	ctx := context.Background()

	_, err := store.Create(ctx, sampleEvent("summer-bbq"))
	require.NoError(t, err)

	_, err = store.Create(ctx, sampleEvent("summer-bbq"))
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestDeleteIsPhysicalAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	_, store := newEventPair(t, db, newClock())
	ctx := context.Background()

	created, err := store.Create(ctx, sampleEvent("summer-bbq"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	exists, err := store.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting again is a no-op, not an error
	require.NoError(t, store.Delete(ctx, created.ID))
	require.NoError(t, store.Delete(ctx, 99999))
}

func TestSoftDeleteScope(t *testing.T) {
	db := newTestDB(t)
	clock := newClock()
	query, store := newEventPair(t, db, clock)
	ctx := context.Background()

	kept, err := store.Create(ctx, sampleEvent("kept"))
	require.NoError(t, err)
	gone, err := store.Create(ctx, sampleEvent("gone"))
	require.NoError(t, err)

	// soft delete is a normal update that sets the marker
	now := clock.Now()
	gone.DeletedAt = &now
	_, err = store.Update(ctx, gone)
	require.NoError(t, err)

	// active interface no longer sees the row
	got, err := query.FindByID(ctx, gone.ID, repository.ScopeActive)
	require.NoError(t, err)
	assert.Nil(t, got)

	active, err := query.FetchAll(ctx, repository.ScopeActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)

	nActive, err := query.Count(ctx, nil, repository.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nActive)

	// the history-aware interface still does
	got, err = query.FindByID(ctx, gone.ID, repository.ScopeAll)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.DeletedAt)

	nAll, err := query.Count(ctx, nil, repository.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, int64(2), nAll)
}

// fetch with a translated predicate must agree with evaluating the same
// predicate over the records in memory
func TestFetchPredicateSoundness(t *testing.T) {
	db := newTestDB(t)
	clock := newClock()
	ctx := context.Background()

	query, err := repository.NewQuery[record.ReservationRecord, model.ReservationModel](db)
	require.NoError(t, err)
	store, err := repository.NewStore[record.ReservationRecord, model.ReservationModel](db, clock)
	require.NoError(t, err)

	seed := []record.ReservationRecord{
		{InvitationID: 1, UserID: 1, PartySize: 0},
		{InvitationID: 1, UserID: 2, PartySize: 3},
		{InvitationID: 1, UserID: 3, PartySize: 5},
		{InvitationID: 2, UserID: 1, PartySize: 2},
	}
	var all []record.ReservationRecord
	for _, r := range seed {
		out, err := store.Create(ctx, r)
		require.NoError(t, err)
		all = append(all, out)
	}

	pred := filter.And(
		filter.Eq(record.FieldReservationInvitationID, int64(1)),
		filter.Gt(record.FieldReservationPartySize, 0),
	)
	got, err := query.Fetch(ctx, pred, repository.ScopeAll)
	require.NoError(t, err)

	var want []int64
	for _, r := range all {
		if r.InvitationID == 1 && r.PartySize > 0 {
			want = append(want, r.ID)
		}
	}
	var gotIDs []int64
	for _, r := range got {
		gotIDs = append(gotIDs, r.ID)
	}
	assert.ElementsMatch(t, want, gotIDs)

	n, err := query.Count(ctx, pred, repository.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, int64(len(want)), n)

	ok, err := query.Exists(ctx, filter.Eq(record.FieldReservationPartySize, 5), repository.ScopeAll)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = query.Exists(ctx, filter.Eq(record.FieldReservationPartySize, 99), repository.ScopeAll)
	require.NoError(t, err)
	assert.False(t, ok)
}

// a predicate on a derived record field fails before any store round
// trip, never returning an unfiltered or empty result
func TestUnsupportedFilterRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	query, err := repository.NewQuery[record.UserRecord, model.UserModel](db)
	require.NoError(t, err)

	bad := filter.Eq(record.FieldUserFullName, "Ada Lovelace")

	_, err = query.Find(ctx, bad, repository.ScopeActive)
	require.ErrorIs(t, err, filter.ErrUnsupportedField)

	_, err = query.Fetch(ctx, bad, repository.ScopeActive)
	require.ErrorIs(t, err, filter.ErrUnsupportedField)

	_, err = query.Count(ctx, bad, repository.ScopeActive)
	require.ErrorIs(t, err, filter.ErrUnsupportedField)

	_, err = query.Exists(ctx, bad, repository.ScopeActive)
	require.ErrorIs(t, err, filter.ErrUnsupportedField)
}

func TestFindReturnsNilOnAbsence(t *testing.T) {
	db := newTestDB(t)
	query, store := newEventPair(t, db, newClock())
	ctx := context.Background()

	got, err := query.FindByID(ctx, 404, repository.ScopeActive)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = query.Find(ctx, filter.Eq(record.FieldSlug, "nope"), repository.ScopeActive)
	require.NoError(t, err)
	assert.Nil(t, got)

	gotp, err := store.GetByID(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, gotp)
}
