package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the write executor for one record/model pair. It owns the
// bookkeeping stamps: callers hand it records and it decides created_on,
// updated_on and the concurrency token from its injected clock — a
// caller-supplied stamp is never trusted. One fresh session per call,
// single-row writes ride the store's own transaction.
type Store[R any, M any] struct {
	db    *gorm.DB
	clock Clock
	b     Binding[R, M]
}

func NewStore[R any, M any](db *gorm.DB, clock Clock) (*Store[R, M], error) {
	b, err := Lookup[R, M]()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Store[R, M]{db: db, clock: clock, b: b}, nil
}

// Create inserts the record and returns it with the store-assigned fields
// filled in. Any caller-supplied id is discarded; created_on comes from
// the clock, updated_on stays unset until the first update, and a new
// concurrency token is issued. A unique-index violation (slug race,
// duplicate RSVP pair) surfaces as ErrDuplicateKey so callers can retry.
func (s *Store[R, M]) Create(ctx context.Context, r R) (R, error) {
	m := s.b.ToModel(r)
	meta := s.b.Meta(&m)
	meta.ID = 0
	meta.CreatedOn = s.clock.Now().UTC()
	meta.UpdatedOn = nil
	meta.ConcurrencyToken = uuid.NewString()

	if err := session(s.db, ctx).Create(&m).Error; err != nil {
		var zero R
		return zero, translateWriteErr(err)
	}
	return s.b.ToRecord(&m), nil
}

// GetByID fetches by primary key, any scope — mutation callers operate on
// rows regardless of soft-delete state. Returns nil when absent.
func (s *Store[R, M]) GetByID(ctx context.Context, id int64) (*R, error) {
	var m M
	if err := session(s.db, ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r := s.b.ToRecord(&m)
	return &r, nil
}

// Update issues a full-row write guarded by a compare-and-swap on the
// concurrency token: the row is touched only when (id, token) still match
// what the caller read. The losing writer in a race gets
// ErrConcurrencyConflict and the winner's data stays intact. created_on
// is never rewritten; updated_on and the token always are.
func (s *Store[R, M]) Update(ctx context.Context, r R) (R, error) {
	var zero R

	m := s.b.ToModel(r)
	meta := s.b.Meta(&m)
	if meta.ID == 0 {
		return zero, ErrNotFound
	}
	staleToken := meta.ConcurrencyToken

	now := s.clock.Now().UTC()
	meta.UpdatedOn = &now
	meta.ConcurrencyToken = uuid.NewString()

	tx := session(s.db, ctx).
		Model(new(M)).
		Where("id = ? AND concurrency_token = ?", meta.ID, staleToken).
		Select("*").
		Omit("id", "created_on").
		Updates(&m)
	if tx.Error != nil {
		return zero, translateWriteErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		// disambiguate: row gone vs token stale
		var n int64
		if err := session(s.db, ctx).Model(new(M)).Where("id = ?", meta.ID).Count(&n).Error; err != nil {
			return zero, err
		}
		if n == 0 {
			return zero, ErrNotFound
		}
		return zero, ErrConcurrencyConflict
	}

	// reload so the returned record reflects the stored row, created_on
	// included
	var fresh M
	if err := session(s.db, ctx).Where("id = ?", meta.ID).Take(&fresh).Error; err != nil {
		return zero, err
	}
	return s.b.ToRecord(&fresh), nil
}

// Delete physically removes the row. Deleting an absent id is a no-op,
// not an error.
func (s *Store[R, M]) Delete(ctx context.Context, id int64) error {
	return session(s.db, ctx).Where("id = ?", id).Delete(new(M)).Error
}

// Exists reports whether a row with the id exists, soft-deleted included.
func (s *Store[R, M]) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := session(s.db, ctx).Model(new(M)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// translateWriteErr keeps the error taxonomy distinct: duplicate-key gets
// its own sentinel (retryable), everything else passes through untouched.
// Requires gorm.Config{TranslateError: true} on the handle.
func translateWriteErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrDuplicateKey, err)
	}
	return err
}
