// Package repository contains the generic read and write executors shared
// by every record/model pair, plus the registry that binds the pairs
// together at startup.
package repository

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"rsvphub_backend/internals/persistence/model"
)

// Scope makes the active/history distinction explicit on every read.
// There is no implicit soft-delete filter anywhere; a query either asks
// for live rows or for everything, in the signature.
type Scope int

const (
	// ScopeActive excludes soft-deleted rows.
	ScopeActive Scope = iota
	// ScopeAll includes them (admin listings, slug uniqueness, history).
	ScopeAll
)

// Binding wires one record type to its model: the table, the
// record-field→column map the filter translator uses, the conversion
// functions, and an accessor for the model's bookkeeping fields.
// Bindings replace name-based type resolution: the pairing is data built
// once at startup, not a runtime naming convention.
type Binding[R any, M any] struct {
	Table      string
	Columns    map[string]string
	SoftDelete bool

	ToRecord func(*M) R
	ToModel  func(R) M
	Meta     func(*M) *model.Base
}

func (b Binding[R, M]) validate() error {
	if b.Table == "" || len(b.Columns) == 0 || b.ToRecord == nil || b.ToModel == nil || b.Meta == nil {
		var r R
		return fmt.Errorf("%w: incomplete binding for %T", ErrNotRegistered, r)
	}
	return nil
}

// The registry is populated once during startup (bindings.RegisterAll)
// and read-only afterwards, so it needs no locking.
var registry = map[reflect.Type]any{}

// Register installs the binding for record type R. Later registrations
// for the same type overwrite earlier ones (tests re-register freely).
func Register[R any, M any](b Binding[R, M]) {
	registry[reflect.TypeFor[R]()] = b
}

// Lookup resolves the binding for record type R. A missing or malformed
// binding is a configuration error and fails loudly rather than degrading
// into a no-op executor.
func Lookup[R any, M any]() (Binding[R, M], error) {
	raw, ok := registry[reflect.TypeFor[R]()]
	if !ok {
		var r R
		return Binding[R, M]{}, fmt.Errorf("%w: %T", ErrNotRegistered, r)
	}
	b, ok := raw.(Binding[R, M])
	if !ok {
		var r R
		var m M
		return Binding[R, M]{}, fmt.Errorf("%w: %T is not bound to %T", ErrNotRegistered, r, m)
	}
	if err := b.validate(); err != nil {
		return Binding[R, M]{}, err
	}
	return b, nil
}

// session opens a fresh unit of work for exactly one operation: new GORM
// session, caller's context, no state shared with any other in-flight
// call. Released when the operation returns on every path.
func session(db *gorm.DB, ctx context.Context) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true, Context: ctx})
}
