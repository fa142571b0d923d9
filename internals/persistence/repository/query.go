package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rsvphub_backend/internals/persistence/filter"
)

// Query is the read-only executor for one record/model pair. Every call
// opens a fresh session with the caller's context, translates the filter
// before touching the store, and maps rows back to records. Reads are
// plain selects with no write-back, so a concurrently mutated row is
// never served from in-process state.
type Query[R any, M any] struct {
	db *gorm.DB
	b  Binding[R, M]
}

// NewQuery resolves the binding for R from the registry; an unregistered
// record type is a startup bug, reported as ErrNotRegistered.
func NewQuery[R any, M any](db *gorm.DB) (*Query[R, M], error) {
	b, err := Lookup[R, M]()
	if err != nil {
		return nil, err
	}
	return &Query[R, M]{db: db, b: b}, nil
}

// scoped applies the explicit active/history choice. Models without a
// soft-delete column ignore the scope: every row is live.
func (q *Query[R, M]) scoped(tx *gorm.DB, scope Scope) *gorm.DB {
	if q.b.SoftDelete && scope == ScopeActive {
		tx = tx.Where("deleted_at IS NULL")
	}
	return tx
}

// filtered translates f and pushes it down; a nil f means no filter.
func (q *Query[R, M]) filtered(tx *gorm.DB, f filter.Expr) (*gorm.DB, error) {
	if f == nil {
		return tx, nil
	}
	sql, args, err := filter.Translate(f, q.b.Columns)
	if err != nil {
		return nil, err
	}
	return tx.Where(sql, args...), nil
}

// FindByID returns the row with the given id within scope, or nil when
// absent. Absence is not an error; callers decide what it means.
func (q *Query[R, M]) FindByID(ctx context.Context, id int64, scope Scope) (*R, error) {
	var m M
	tx := q.scoped(session(q.db, ctx), scope).Where("id = ?", id)
	if err := tx.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r := q.b.ToRecord(&m)
	return &r, nil
}

// Find returns the first row matching f within scope, or nil.
func (q *Query[R, M]) Find(ctx context.Context, f filter.Expr, scope Scope) (*R, error) {
	tx, err := q.filtered(q.scoped(session(q.db, ctx), scope), f)
	if err != nil {
		return nil, err
	}
	var m M
	if err := tx.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r := q.b.ToRecord(&m)
	return &r, nil
}

// FetchAll returns every row within scope, unordered.
func (q *Query[R, M]) FetchAll(ctx context.Context, scope Scope) ([]R, error) {
	return q.Fetch(ctx, nil, scope)
}

// Fetch returns the rows matching f within scope, unordered. A nil f
// fetches everything in scope.
func (q *Query[R, M]) Fetch(ctx context.Context, f filter.Expr, scope Scope) ([]R, error) {
	tx, err := q.filtered(q.scoped(session(q.db, ctx), scope), f)
	if err != nil {
		return nil, err
	}
	var ms []M
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]R, 0, len(ms))
	for i := range ms {
		out = append(out, q.b.ToRecord(&ms[i]))
	}
	return out, nil
}

// Count counts rows within scope; f may be nil.
func (q *Query[R, M]) Count(ctx context.Context, f filter.Expr, scope Scope) (int64, error) {
	var m M
	tx, err := q.filtered(q.scoped(session(q.db, ctx).Model(&m), scope), f)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Exists reports whether any row matches f within scope.
func (q *Query[R, M]) Exists(ctx context.Context, f filter.Expr, scope Scope) (bool, error) {
	n, err := q.Count(ctx, f, scope)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
