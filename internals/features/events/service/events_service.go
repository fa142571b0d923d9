package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/filter"
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
	"rsvphub_backend/internals/persistence/repository"
)

// createRetries bounds the create loop that absorbs the slug race: two
// concurrent creates with the same title can both pass the uniqueness
// check, the loser hits the unique index and regenerates.
const createRetries = 3

type EventService struct {
	query *repository.Query[record.EventRecord, model.EventModel]
	store *repository.Store[record.EventRecord, model.EventModel]
	clock repository.Clock
}

func NewEventService(db *gorm.DB, clock repository.Clock) (*EventService, error) {
	q, err := repository.NewQuery[record.EventRecord, model.EventModel](db)
	if err != nil {
		return nil, err
	}
	s, err := repository.NewStore[record.EventRecord, model.EventModel](db, clock)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = repository.SystemClock()
	}
	return &EventService{query: q, store: s, clock: clock}, nil
}

// slugTaken checks the whole table, soft-deleted rows included; a slug is
// never handed out twice.
func (s *EventService) slugTaken(ctx context.Context, slug string) (bool, error) {
	return s.query.Exists(ctx, filter.Eq(record.FieldSlug, slug), repository.ScopeAll)
}

// Create slugs the title and inserts, retrying with a fresh slug when a
// concurrent create wins the same one.
func (s *EventService) Create(ctx context.Context, rec record.EventRecord) (record.EventRecord, error) {
	var lastErr error
	for i := 0; i < createRetries; i++ {
		slug, err := helper.EnsureUniqueSlug(ctx, rec.Title, s.slugTaken)
		if err != nil {
			return record.EventRecord{}, err
		}
		rec.Slug = slug

		out, err := s.store.Create(ctx, rec)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return record.EventRecord{}, err
		}
		lastErr = err
	}
	return record.EventRecord{}, lastErr
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*record.EventRecord, error) {
	return s.query.FindByID(ctx, id, repository.ScopeActive)
}

func (s *EventService) GetBySlug(ctx context.Context, slug string) (*record.EventRecord, error) {
	return s.query.Find(ctx, filter.Eq(record.FieldSlug, slug), repository.ScopeActive)
}

// List returns events in the requested scope; ScopeAll is the admin
// "include removed" view.
func (s *EventService) List(ctx context.Context, scope repository.Scope) ([]record.EventRecord, error) {
	return s.query.FetchAll(ctx, scope)
}

func (s *EventService) Count(ctx context.Context, scope repository.Scope) (int64, error) {
	return s.query.Count(ctx, nil, scope)
}

// Update writes the full record; the concurrency token on rec must match
// the stored row or the store rejects the write.
func (s *EventService) Update(ctx context.Context, rec record.EventRecord) (record.EventRecord, error) {
	return s.store.Update(ctx, rec)
}

// SoftDelete marks the event removed via a normal update. Already-removed
// and absent events are both a no-op.
func (s *EventService) SoftDelete(ctx context.Context, id int64) error {
	cur, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil || cur.DeletedAt != nil {
		return nil
	}
	now := s.clock.Now().UTC()
	cur.DeletedAt = &now
	_, err = s.store.Update(ctx, *cur)
	return err
}
