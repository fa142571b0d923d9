package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	helper "rsvphub_backend/internals/helpers"
	"rsvphub_backend/internals/persistence/filter"
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
	"rsvphub_backend/internals/persistence/repository"
)

const createRetries = 3

type UserService struct {
	query *repository.Query[record.UserRecord, model.UserModel]
	store *repository.Store[record.UserRecord, model.UserModel]
	clock repository.Clock
}

func NewUserService(db *gorm.DB, clock repository.Clock) (*UserService, error) {
	q, err := repository.NewQuery[record.UserRecord, model.UserModel](db)
	if err != nil {
		return nil, err
	}
	s, err := repository.NewStore[record.UserRecord, model.UserModel](db, clock)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = repository.SystemClock()
	}
	return &UserService{query: q, store: s, clock: clock}, nil
}

func (s *UserService) slugTaken(ctx context.Context, slug string) (bool, error) {
	return s.query.Exists(ctx, filter.Eq(record.FieldSlug, slug), repository.ScopeAll)
}

// Create slugs "first last" and inserts, regenerating on a lost slug
// race.
func (s *UserService) Create(ctx context.Context, rec record.UserRecord) (record.UserRecord, error) {
	seed := strings.TrimSpace(rec.FirstName + " " + rec.LastName)

	var lastErr error
	for i := 0; i < createRetries; i++ {
		slug, err := helper.EnsureUniqueSlug(ctx, seed, s.slugTaken)
		if err != nil {
			return record.UserRecord{}, err
		}
		rec.Slug = slug

		out, err := s.store.Create(ctx, rec)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return record.UserRecord{}, err
		}
		lastErr = err
	}
	return record.UserRecord{}, lastErr
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*record.UserRecord, error) {
	return s.query.FindByID(ctx, id, repository.ScopeActive)
}

func (s *UserService) GetBySlug(ctx context.Context, slug string) (*record.UserRecord, error) {
	return s.query.Find(ctx, filter.Eq(record.FieldSlug, slug), repository.ScopeActive)
}

func (s *UserService) List(ctx context.Context, scope repository.Scope) ([]record.UserRecord, error) {
	return s.query.FetchAll(ctx, scope)
}

func (s *UserService) Update(ctx context.Context, rec record.UserRecord) (record.UserRecord, error) {
	return s.store.Update(ctx, rec)
}

func (s *UserService) SoftDelete(ctx context.Context, id int64) error {
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
