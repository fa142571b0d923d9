package service

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
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
	"rsvphub_backend/internals/persistence/repository"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newTestDB(t *testing.T) (*gorm.DB, *fakeClock) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
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
	return db, &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func bbq() record.EventRecord {
	return record.EventRecord{
		Title:        "Summer BBQ",
		AddressLine1: "100 Main St",
		City:         "Austin",
		State:        "TX",
		Postal:       "78701",
	}
}

func TestCreateAssignsSequentialSlugs(t *testing.T) {
	db, clock := newTestDB(t)
	svc, err := NewEventService(db, clock)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Create(ctx, bbq())
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq", first.Slug)

	second, err := svc.Create(ctx, bbq())
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq-1", second.Slug)

	third, err := svc.Create(ctx, bbq())
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq-2", third.Slug)
}

// soft-deleted events keep their slug reserved forever
func TestSlugNeverReused(t *testing.T) {
	db, clock := newTestDB(t)
	svc, err := NewEventService(db, clock)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Create(ctx, bbq())
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(ctx, first.ID))

	second, err := svc.Create(ctx, bbq())
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq-1", second.Slug)
}

func TestSoftDeleteHidesFromActiveViews(t *testing.T) {
	db, clock := newTestDB(t)
	svc, err := NewEventService(db, clock)
	require.NoError(t, err)
	ctx := context.Background()

	ev, err := svc.Create(ctx, bbq())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, ev.ID))

	got, err := svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	bySlug, err := svc.GetBySlug(ctx, ev.Slug)
	require.NoError(t, err)
	assert.Nil(t, bySlug)

	active, err := svc.List(ctx, repository.ScopeActive)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, repository.ScopeAll)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].DeletedAt)

	// repeated delete is a no-op
	require.NoError(t, svc.SoftDelete(ctx, ev.ID))
	require.NoError(t, svc.SoftDelete(ctx, 99999))
}

func TestUpdateKeepsSlugAndRejectsStaleToken(t *testing.T) {
	db, clock := newTestDB(t)
	svc, err := NewEventService(db, clock)
	require.NoError(t, err)
	ctx := context.Background()

	ev, err := svc.Create(ctx, bbq())
	require.NoError(t, err)

	edited := ev
	edited.Title = "Autumn BBQ"
	updated, err := svc.Update(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "summer-bbq", updated.Slug, "slug is a published identifier and does not follow the title")

	stale := ev // still carries the pre-update token
	stale.Title = "Winter BBQ"
	_, err = svc.Update(ctx, stale)
	require.ErrorIs(t, err, repository.ErrConcurrencyConflict)
}
