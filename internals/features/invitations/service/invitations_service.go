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

const createRetries = 3

// ErrEventNotFound: the invitation references an event that does not
// exist or is removed. Checked before create so the caller gets a 404,
// not a bare FK failure.
var ErrEventNotFound = errors.New("invitations: event not found")

type InvitationService struct {
	query  *repository.Query[record.InvitationRecord, model.InvitationModel]
	store  *repository.Store[record.InvitationRecord, model.InvitationModel]
	events *repository.Query[record.EventRecord, model.EventModel]
	clock  repository.Clock
}

func NewInvitationService(db *gorm.DB, clock repository.Clock) (*InvitationService, error) {
	q, err := repository.NewQuery[record.InvitationRecord, model.InvitationModel](db)
	if err != nil {
		return nil, err
	}
	s, err := repository.NewStore[record.InvitationRecord, model.InvitationModel](db, clock)
	if err != nil {
		return nil, err
	}
	ev, err := repository.NewQuery[record.EventRecord, model.EventModel](db)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = repository.SystemClock()
	}
	return &InvitationService{query: q, store: s, events: ev, clock: clock}, nil
}

func (s *InvitationService) slugTaken(ctx context.Context, slug string) (bool, error) {
	return s.query.Exists(ctx, filter.Eq(record.FieldSlug, slug), repository.ScopeAll)
}

// Create seeds the invitation slug from the parent event's slug, so
// invitation links read like the event they belong to.
func (s *InvitationService) Create(ctx context.Context, rec record.InvitationRecord) (record.InvitationRecord, error) {
	ev, err := s.events.FindByID(ctx, rec.EventID, repository.ScopeActive)
	if err != nil {
		return record.InvitationRecord{}, err
	}
	if ev == nil {
		return record.InvitationRecord{}, ErrEventNotFound
	}

	var lastErr error
	for i := 0; i < createRetries; i++ {
		slug, err := helper.EnsureUniqueSlug(ctx, ev.Slug, s.slugTaken)
		if err != nil {
			return record.InvitationRecord{}, err
		}
		rec.Slug = slug

		out, err := s.store.Create(ctx, rec)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return record.InvitationRecord{}, err
		}
		lastErr = err
	}
	return record.InvitationRecord{}, lastErr
}

func (s *InvitationService) GetByID(ctx context.Context, id int64) (*record.InvitationRecord, error) {
	return s.query.FindByID(ctx, id, repository.ScopeActive)
}

func (s *InvitationService) GetBySlug(ctx context.Context, slug string) (*record.InvitationRecord, error) {
	return s.query.Find(ctx, filter.Eq(record.FieldSlug, slug), repository.ScopeActive)
}

// ListByEvent returns the invitations for one event in the given scope.
func (s *InvitationService) ListByEvent(ctx context.Context, eventID int64, scope repository.Scope) ([]record.InvitationRecord, error) {
	return s.query.Fetch(ctx, filter.Eq(record.FieldInvitationEventID, eventID), scope)
}

func (s *InvitationService) List(ctx context.Context, scope repository.Scope) ([]record.InvitationRecord, error) {
	return s.query.FetchAll(ctx, scope)
}

func (s *InvitationService) SoftDelete(ctx context.Context, id int64) error {
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
